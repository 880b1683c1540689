package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/entities"
	"github.com/mrlokans/shelf/internal/storage"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Storage: config.Storage{
			Backend:      config.BackendJSON,
			LibraryFile:  filepath.Join(dir, "library.txt"),
			DatabasePath: filepath.Join(dir, "shelf.db"),
		},
		Display: config.Display{Style: "list"},
	}
}

func TestStoreOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    StoreOptions
		wantErr bool
	}{
		{name: "json with file", opts: StoreOptions{Backend: "json", LibraryFile: "library.txt"}},
		{name: "json without file", opts: StoreOptions{Backend: "json"}, wantErr: true},
		{name: "sqlite with path", opts: StoreOptions{Backend: "sqlite", DatabasePath: "shelf.db"}},
		{name: "sqlite without path", opts: StoreOptions{Backend: "sqlite"}, wantErr: true},
		{name: "unknown backend", opts: StoreOptions{Backend: "postgres"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpenStore(t *testing.T) {
	books := []entities.Book{
		{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Read: true},
		{Title: "Emma", Author: "Jane Austen", Year: 1815, Genre: "Classic"},
	}

	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			opts := StoreOptions{
				Backend:      backend,
				LibraryFile:  filepath.Join(dir, "library.txt"),
				DatabasePath: filepath.Join(dir, "shelf.db"),
			}

			store, closeStore, err := OpenStore(opts)
			require.NoError(t, err)
			require.NoError(t, store.Save(books))
			require.NoError(t, closeStore())

			reopened, closeReopened, err := OpenStore(opts)
			require.NoError(t, err)
			defer closeReopened()

			loaded, err := reopened.Load()
			require.NoError(t, err)
			assert.Equal(t, books, loaded)
		})
	}

	t.Run("rejects unknown backend", func(t *testing.T) {
		_, _, err := OpenStore(StoreOptions{Backend: "csv"})
		assert.Error(t, err)
	})
}

func TestRunCommand(t *testing.T) {
	t.Run("parses flags over config defaults", func(t *testing.T) {
		cmd := NewRunCommand(testConfig(t.TempDir()))

		require.NoError(t, cmd.ParseFlags([]string{"-file", "other.json", "-style", "table"}))

		assert.Equal(t, "other.json", cmd.Store.LibraryFile)
		assert.Equal(t, "table", cmd.Style)
		assert.Equal(t, config.BackendJSON, cmd.Store.Backend)
	})

	t.Run("rejects unknown style", func(t *testing.T) {
		cmd := NewRunCommand(testConfig(t.TempDir()))

		assert.Error(t, cmd.ParseFlags([]string{"-style", "grid"}))
	})

	t.Run("runs a scripted session against the json file", func(t *testing.T) {
		cfg := testConfig(t.TempDir())
		out := &bytes.Buffer{}
		cmd := NewRunCommand(cfg)
		cmd.In = strings.NewReader("1\nDune\nFrank Herbert\n1965\nSci-Fi\nno\n4\n6\n")
		cmd.Out = out

		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "1. Dune by Frank Herbert (1965) - Sci-Fi - Unread")
		assert.Contains(t, out.String(), "Goodbye!")

		loaded, err := storage.NewJSONFileStore(cfg.Storage.LibraryFile).Load()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Dune", loaded[0].Title)
	})

	t.Run("malformed library file starts empty", func(t *testing.T) {
		cfg := testConfig(t.TempDir())
		require.NoError(t, os.WriteFile(cfg.Storage.LibraryFile, []byte("garbage"), 0644))
		out := &bytes.Buffer{}
		cmd := NewRunCommand(cfg)
		cmd.In = strings.NewReader("4\n6\n")
		cmd.Out = out

		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Starting with empty library.")
		assert.Contains(t, out.String(), "Your library is empty.")
	})
}

func TestExportMarkdownCommand(t *testing.T) {
	t.Run("requires output", func(t *testing.T) {
		cmd := NewExportMarkdownCommand(testConfig(t.TempDir()))

		assert.Error(t, cmd.ParseFlags(nil))
	})

	t.Run("exports stored library", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(dir)
		require.NoError(t, storage.NewJSONFileStore(cfg.Storage.LibraryFile).Save([]entities.Book{
			{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Read: true},
		}))
		outputDir := filepath.Join(dir, "notes")

		out := &bytes.Buffer{}
		cmd := NewExportMarkdownCommand(cfg)
		cmd.Out = out
		require.NoError(t, cmd.ParseFlags([]string{"-output", outputDir}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Exported 1 books to markdown")
		assert.FileExists(t, filepath.Join(outputDir, "Dune.md"))
		assert.FileExists(t, filepath.Join(outputDir, "index.md"))
	})

	t.Run("fails on malformed library", func(t *testing.T) {
		cfg := testConfig(t.TempDir())
		require.NoError(t, os.WriteFile(cfg.Storage.LibraryFile, []byte("garbage"), 0644))
		cmd := NewExportMarkdownCommand(cfg)
		cmd.OutputDir = t.TempDir()

		err := cmd.Run()
		assert.ErrorIs(t, err, storage.ErrLoad)
	})
}
