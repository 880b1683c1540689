package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/menu"
)

// RunCommand starts the interactive library menu
type RunCommand struct {
	Store StoreOptions
	Style string

	In  io.Reader
	Out io.Writer
}

func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{
		Store: StoreOptions{
			Backend:      cfg.Storage.Backend,
			LibraryFile:  cfg.Storage.LibraryFile,
			DatabasePath: cfg.Storage.DatabasePath,
		},
		Style: cfg.Display.Style,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
}

func (cmd *RunCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)

	fs.StringVar(&cmd.Store.LibraryFile, "file", cmd.Store.LibraryFile, "Path to the JSON library file")
	fs.StringVar(&cmd.Store.Backend, "backend", cmd.Store.Backend, "Storage backend: json or sqlite")
	fs.StringVar(&cmd.Store.DatabasePath, "db", cmd.Store.DatabasePath, "Path to the SQLite database (sqlite backend)")
	fs.StringVar(&cmd.Style, "style", cmd.Style, "How book lists are printed: list or table")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Manage your personal library from an interactive menu.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s run -file ~/books.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s run -backend sqlite -db ~/shelf.db -style table\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cmd.Store.Validate(); err != nil {
		return err
	}
	if _, err := menu.ParseDisplayStyle(cmd.Style); err != nil {
		return err
	}

	return nil
}

func (cmd *RunCommand) Run() error {
	style, err := menu.ParseDisplayStyle(cmd.Style)
	if err != nil {
		return err
	}

	store, closeStore, err := OpenStore(cmd.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	session := menu.NewSession(store, cmd.In, cmd.Out)
	session.SetDisplayStyle(style)
	return session.Run()
}
