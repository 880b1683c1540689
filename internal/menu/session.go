// Package menu runs the interactive console: a numbered menu whose choices are
// dispatched to operations over the in-memory library.
package menu

import (
	"fmt"
	"io"
	"log"

	"github.com/mrlokans/shelf/internal/library"
	"github.com/mrlokans/shelf/internal/storage"
)

// Command is a top-level menu choice.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandRemove
	CommandSearch
	CommandDisplay
	CommandStatistics
	CommandExit
)

// ParseCommand maps the text typed at the menu prompt to a Command.
func ParseCommand(choice string) (Command, bool) {
	switch choice {
	case "1":
		return CommandAdd, true
	case "2":
		return CommandRemove, true
	case "3":
		return CommandSearch, true
	case "4":
		return CommandDisplay, true
	case "5":
		return CommandStatistics, true
	case "6":
		return CommandExit, true
	}
	return 0, false
}

var menuLines = []string{
	"Welcome to your Personal Library Manager!",
	"1. Add a book",
	"2. Remove a book",
	"3. Search for a book",
	"4. Display all books",
	"5. Display statistics",
	"6. Exit",
}

// Session ties the library to its store and to the console ports.
type Session struct {
	library *library.Library
	store   storage.Store
	prompt  *Prompter
	out     io.Writer
	style   DisplayStyle
}

func NewSession(store storage.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		library: library.New(nil),
		store:   store,
		prompt:  NewPrompter(in, out),
		out:     out,
		style:   DisplayStyleList,
	}
}

func (s *Session) SetDisplayStyle(style DisplayStyle) {
	s.style = style
}

// Library exposes the in-memory collection.
func (s *Session) Library() *library.Library {
	return s.library
}

// Load replaces the in-memory library with the stored one.
// A failed load is reported and leaves the library empty.
func (s *Session) Load() {
	books, err := s.store.Load()
	if err != nil {
		fmt.Fprintf(s.out, "Error loading library file: %v. Starting with empty library.\n", err)
		s.library = library.New(nil)
		return
	}
	s.library = library.New(books)
}

// Save writes the library to the store. Failures are reported and the
// session carries on with the in-memory copy.
func (s *Session) Save() {
	if err := s.store.Save(s.library.Books()); err != nil {
		fmt.Fprintf(s.out, "Error saving library file: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Library saved to file.")
}

// Run loads the library and serves the menu until the user exits or input
// ends. Input failures end the session the same way as choosing exit.
func (s *Session) Run() error {
	s.Load()

	for {
		for _, line := range menuLines {
			fmt.Fprintln(s.out, line)
		}

		choice, err := s.prompt.Ask("Enter your choice: ")
		if err != nil {
			return s.closeInput(err)
		}

		cmd, ok := ParseCommand(choice)
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		done, err := s.Dispatch(cmd)
		if err != nil {
			return s.closeInput(err)
		}
		if done {
			return nil
		}
	}
}

// Dispatch executes one command. done is true once the session should stop.
func (s *Session) Dispatch(cmd Command) (done bool, err error) {
	switch cmd {
	case CommandAdd:
		return false, s.addBook()
	case CommandRemove:
		return false, s.removeBook()
	case CommandSearch:
		return false, s.searchBooks()
	case CommandDisplay:
		s.displayBooks()
		return false, nil
	case CommandStatistics:
		s.displayStatistics()
		return false, nil
	case CommandExit:
		return true, s.exit()
	}
	fmt.Fprintln(s.out, "Invalid choice. Please try again.")
	return false, nil
}

func (s *Session) closeInput(err error) error {
	fmt.Fprintln(s.out)
	// Plain end of input is expected; anything else is worth a diagnostic
	if err != ErrInputClosed {
		log.Printf("Console input ended: %v", err)
	}
	return s.exit()
}

func (s *Session) exit() error {
	s.Save()
	fmt.Fprintln(s.out, "Goodbye!")
	return nil
}
