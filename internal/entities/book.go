package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidYear is returned when a book's publication year is not a positive integer.
var ErrInvalidYear = errors.New("publication year must be a positive integer")

const (
	ReadStatusRead   = "Read"
	ReadStatusUnread = "Unread"
)

// Book is a single entry in the personal library.
// Title is the de-facto key; it is not required to be unique.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// NewBook builds a Book, rejecting non-positive years.
func NewBook(title, author string, year int, genre string, read bool) (Book, error) {
	book := Book{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		Read:   read,
	}
	if err := book.Validate(); err != nil {
		return Book{}, err
	}
	return book, nil
}

func (b Book) Validate() error {
	if b.Year <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, b.Year)
	}
	return nil
}

func (b Book) ReadStatus() string {
	if b.Read {
		return ReadStatusRead
	}
	return ReadStatusUnread
}

// String renders the book the way it is listed in the console.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (%d) - %s - %s", b.Title, b.Author, b.Year, b.Genre, b.ReadStatus())
}
