package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once the console input has no more lines
// or can no longer be read.
var ErrInputClosed = errors.New("input closed")

// Prompter writes a prompt and reads one trimmed line of the answer.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as an answer
		if line != "" && errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// AskYear re-prompts until a positive integer is entered.
func (p *Prompter) AskYear(prompt string) (int, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		year, convErr := strconv.Atoi(answer)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a valid integer for the year.")
			continue
		}
		if year <= 0 {
			fmt.Fprintln(p.out, "Please enter a valid year.")
			continue
		}
		return year, nil
	}
}

// AskYesNo re-prompts until "yes" or "no" is entered, in any case.
func (p *Prompter) AskYesNo(prompt string) (bool, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please enter 'yes' or 'no'.")
	}
}
