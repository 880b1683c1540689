package storage

import (
	"errors"

	"github.com/mrlokans/shelf/internal/entities"
)

var (
	// ErrLoad wraps every failure to read or decode a persisted library.
	ErrLoad = errors.New("failed to load library")
	// ErrSave wraps every failure to write a persisted library.
	ErrSave = errors.New("failed to save library")
)

// Store persists the whole library at once.
//
// Load on a store that has never been written returns an empty slice and no error.
// Save overwrites everything previously stored.
type Store interface {
	Load() ([]entities.Book, error)
	Save(books []entities.Book) error
}
