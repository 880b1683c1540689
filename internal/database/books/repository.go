// Package books stores the library as rows in SQLite.
//
//	var _ storage.Store = (*Repository)(nil)
package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/shelf/internal/entities"
	"github.com/mrlokans/shelf/internal/storage"
)

// Repository handles whole-library reads and writes.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load returns every stored book in insertion order.
func (r *Repository) Load() ([]entities.Book, error) {
	var records []entities.BookRecord
	if err := r.db.Order("position ASC, id ASC").Find(&records).Error; err != nil {
		return []entities.Book{}, fmt.Errorf("%w: %w", storage.ErrLoad, err)
	}

	books := make([]entities.Book, 0, len(records))
	for _, record := range records {
		books = append(books, record.Book())
	}
	return books, nil
}

// Save replaces the stored library with books.
func (r *Repository) Save(books []entities.Book) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.BookRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear books: %w", err)
		}
		if len(books) == 0 {
			return nil
		}

		records := make([]entities.BookRecord, 0, len(books))
		for i, book := range books {
			records = append(records, entities.NewBookRecord(book, i))
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to insert books: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSave, err)
	}
	return nil
}
