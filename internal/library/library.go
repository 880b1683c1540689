// Package library holds the in-memory book collection and the operations on it.
// All lookups are linear scans in insertion order.
package library

import (
	"strings"

	"github.com/mrlokans/shelf/internal/entities"
)

// SearchField selects which book attribute a search matches against.
type SearchField int

const (
	SearchByTitle SearchField = iota + 1
	SearchByAuthor
)

// Stats summarizes how much of the library has been read.
type Stats struct {
	Total       int
	Read        int
	PercentRead float64
}

// Library is an ordered collection of books. Duplicates are allowed.
type Library struct {
	books []entities.Book
}

func New(books []entities.Book) *Library {
	copied := make([]entities.Book, len(books))
	copy(copied, books)
	return &Library{books: copied}
}

// Books returns a copy of the collection in insertion order.
func (l *Library) Books() []entities.Book {
	out := make([]entities.Book, len(l.books))
	copy(out, l.books)
	return out
}

func (l *Library) Len() int {
	return len(l.books)
}

func (l *Library) IsEmpty() bool {
	return len(l.books) == 0
}

func (l *Library) Add(book entities.Book) {
	l.books = append(l.books, book)
}

// RemoveByTitle deletes the first book whose title equals title, ignoring case.
// It reports whether a book was removed.
func (l *Library) RemoveByTitle(title string) bool {
	for i, book := range l.books {
		if strings.EqualFold(book.Title, title) {
			l.books = append(l.books[:i], l.books[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns every book whose chosen field contains query, ignoring case.
func (l *Library) Search(field SearchField, query string) []entities.Book {
	needle := strings.ToLower(query)
	var matches []entities.Book
	for _, book := range l.books {
		var haystack string
		switch field {
		case SearchByTitle:
			haystack = book.Title
		case SearchByAuthor:
			haystack = book.Author
		default:
			return nil
		}
		if strings.Contains(strings.ToLower(haystack), needle) {
			matches = append(matches, book)
		}
	}
	return matches
}

// Stats computes read counts. PercentRead is zero for an empty library.
func (l *Library) Stats() Stats {
	stats := Stats{Total: len(l.books)}
	for _, book := range l.books {
		if book.Read {
			stats.Read++
		}
	}
	if stats.Total > 0 {
		stats.PercentRead = float64(stats.Read) / float64(stats.Total) * 100
	}
	return stats
}
