package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/exporters"
)

// ExportMarkdownCommand writes the library as Obsidian-compatible markdown notes
type ExportMarkdownCommand struct {
	Store     StoreOptions
	OutputDir string

	Out io.Writer
}

func NewExportMarkdownCommand(cfg *config.Config) *ExportMarkdownCommand {
	return &ExportMarkdownCommand{
		Store: StoreOptions{
			Backend:      cfg.Storage.Backend,
			LibraryFile:  cfg.Storage.LibraryFile,
			DatabasePath: cfg.Storage.DatabasePath,
		},
		OutputDir: cfg.Export.Dir,
		Out:       os.Stdout,
	}
}

func (cmd *ExportMarkdownCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-markdown", flag.ExitOnError)

	fs.StringVar(&cmd.OutputDir, "output", cmd.OutputDir, "Output directory for markdown notes (required)")
	fs.StringVar(&cmd.Store.LibraryFile, "file", cmd.Store.LibraryFile, "Path to the JSON library file")
	fs.StringVar(&cmd.Store.Backend, "backend", cmd.Store.Backend, "Storage backend: json or sqlite")
	fs.StringVar(&cmd.Store.DatabasePath, "db", cmd.Store.DatabasePath, "Path to the SQLite database (sqlite backend)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-markdown -output <dir> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export every book as a markdown note, plus an index note.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-markdown -output ~/Obsidian/Books\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -output not provided")
	}

	return cmd.Store.Validate()
}

func (cmd *ExportMarkdownCommand) Run() error {
	store, closeStore, err := OpenStore(cmd.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	books, err := store.Load()
	if err != nil {
		return err
	}

	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Exporting %d books to markdown: %s\n", len(books), absOutputDir)

	result, err := exporters.NewMarkdownExporter(absOutputDir).Export(books)
	if err != nil {
		return fmt.Errorf("failed to export to markdown: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Exported %d books to markdown\n", result.BooksProcessed)
	if result.BooksFailed > 0 {
		fmt.Fprintf(cmd.Out, "%d books failed to export\n", result.BooksFailed)
	}
	return nil
}
