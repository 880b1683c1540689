package menu

import (
	"fmt"

	"github.com/mrlokans/shelf/internal/entities"
	"github.com/mrlokans/shelf/internal/library"
)

func (s *Session) addBook() error {
	title, err := s.prompt.Ask("Enter the book title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt.Ask("Enter the author: ")
	if err != nil {
		return err
	}
	year, err := s.prompt.AskYear("Enter the publication year: ")
	if err != nil {
		return err
	}
	genre, err := s.prompt.Ask("Enter the genre: ")
	if err != nil {
		return err
	}
	read, err := s.prompt.AskYesNo("Have you read this book? (yes/no): ")
	if err != nil {
		return err
	}

	book, err := entities.NewBook(title, author, year, genre, read)
	if err != nil {
		fmt.Fprintf(s.out, "Could not add book: %v\n", err)
		return nil
	}

	s.library.Add(book)
	fmt.Fprintln(s.out, "Book added successfully!")
	s.Save()
	return nil
}

func (s *Session) removeBook() error {
	title, err := s.prompt.Ask("Enter the title of the book to remove: ")
	if err != nil {
		return err
	}

	if !s.library.RemoveByTitle(title) {
		fmt.Fprintln(s.out, "Book not found.")
		return nil
	}

	fmt.Fprintln(s.out, "Book removed successfully!")
	s.Save()
	return nil
}

func (s *Session) searchBooks() error {
	fmt.Fprintln(s.out, "Search by:")
	fmt.Fprintln(s.out, "1. Title")
	fmt.Fprintln(s.out, "2. Author")

	choice, err := s.prompt.Ask("Enter your choice: ")
	if err != nil {
		return err
	}

	var field library.SearchField
	var prompt string
	switch choice {
	case "1":
		field, prompt = library.SearchByTitle, "Enter the title: "
	case "2":
		field, prompt = library.SearchByAuthor, "Enter the author: "
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
		return nil
	}

	query, err := s.prompt.Ask(prompt)
	if err != nil {
		return err
	}

	matches := s.library.Search(field, query)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No matching books found.")
		return nil
	}

	fmt.Fprintln(s.out, "Matching Books:")
	renderBooks(s.out, s.style, matches)
	return nil
}

func (s *Session) displayBooks() {
	if s.library.IsEmpty() {
		fmt.Fprintln(s.out, "Your library is empty.")
		return
	}

	fmt.Fprintln(s.out, "Your Library:")
	renderBooks(s.out, s.style, s.library.Books())
}

func (s *Session) displayStatistics() {
	if s.library.IsEmpty() {
		fmt.Fprintln(s.out, "Your library is empty.")
		return
	}

	stats := s.library.Stats()
	fmt.Fprintf(s.out, "Total books: %d\n", stats.Total)
	fmt.Fprintf(s.out, "Percentage read: %.1f%%\n", stats.PercentRead)
}
