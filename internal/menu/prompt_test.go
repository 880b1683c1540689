package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterAsk(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("  hello  \nlast"), out)

	first, err := p.Ask("First: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", first)

	second, err := p.Ask("Second: ")
	require.NoError(t, err)
	assert.Equal(t, "last", second)

	_, err = p.Ask("Third: ")
	assert.ErrorIs(t, err, ErrInputClosed)

	assert.Equal(t, "First: Second: Third: ", out.String())
}

func TestPrompterAsk_ReadFailure(t *testing.T) {
	p := NewPrompter(iotest.ErrReader(errors.New("device gone")), &bytes.Buffer{})

	_, err := p.Ask("First: ")

	assert.ErrorIs(t, err, ErrInputClosed)
	assert.ErrorContains(t, err, "device gone")
}

func TestPrompterAskYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		messages []string
	}{
		{name: "valid first time", input: "1999\n", expected: 1999},
		{name: "non-numeric then valid", input: "nineteen\n1999\n", expected: 1999, messages: []string{"Please enter a valid integer for the year."}},
		{name: "float is not an integer", input: "1999.5\n1999\n", expected: 1999, messages: []string{"Please enter a valid integer for the year."}},
		{name: "zero then valid", input: "0\n1\n", expected: 1, messages: []string{"Please enter a valid year."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			year, err := NewPrompter(strings.NewReader(tt.input), out).AskYear("Year: ")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, year)
			for _, msg := range tt.messages {
				assert.Contains(t, out.String(), msg)
			}
		})
	}

	t.Run("input ends before a valid year", func(t *testing.T) {
		_, err := NewPrompter(strings.NewReader("-1\n"), &bytes.Buffer{}).AskYear("Year: ")
		assert.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestPrompterAskYesNo(t *testing.T) {
	yes, err := NewPrompter(strings.NewReader("YeS\n"), &bytes.Buffer{}).AskYesNo("? ")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := NewPrompter(strings.NewReader("n\nNO\n"), &bytes.Buffer{}).AskYesNo("? ")
	require.NoError(t, err)
	assert.False(t, no)

	_, err = NewPrompter(strings.NewReader("y\n"), &bytes.Buffer{}).AskYesNo("? ")
	assert.ErrorIs(t, err, ErrInputClosed)
}
