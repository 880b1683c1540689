package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"

	"github.com/mrlokans/shelf/internal/entities"
)

const jsonIndent = "    "

// JSONFileStore keeps the library as a JSON array in a single file.
type JSONFileStore struct {
	Path     string
	lockPath string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{
		Path:     path,
		lockPath: path + ".lock",
	}
}

// Load reads the library file. A missing file is an empty library.
func (s *JSONFileStore) Load() ([]entities.Book, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []entities.Book{}, nil
	}
	if err != nil {
		return []entities.Book{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var books []entities.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return []entities.Book{}, fmt.Errorf("%w: %s: %w", ErrLoad, s.Path, err)
	}

	for i, book := range books {
		if err := book.Validate(); err != nil {
			return []entities.Book{}, fmt.Errorf("%w: record %d: %w", ErrLoad, i+1, err)
		}
	}

	if books == nil {
		books = []entities.Book{}
	}
	return books, nil
}

// Save overwrites the library file with the full collection.
func (s *JSONFileStore) Save(books []entities.Book) error {
	if books == nil {
		books = []entities.Book{}
	}

	data, err := json.MarshalIndent(books, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	lock := flock.New(s.lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("%w: acquire lock: %w", ErrSave, err)
	}
	// The lock file stays on disk; removing it would let a waiter and a
	// newcomer hold locks on different inodes at the same time.
	defer func() { _ = lock.Unlock() }()

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}
