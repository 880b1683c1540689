package entities

import "time"

// BookRecord is the row shape of a Book in the SQLite backend.
// Position keeps insertion order, since titles are not unique.
type BookRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Position  int    `gorm:"index;not null"`
	Title     string `gorm:"index;size:512"`
	Author    string `gorm:"index;size:256"`
	Year      int    `gorm:"not null"`
	Genre     string `gorm:"size:128"`
	Read      bool   `gorm:"default:false"`
	CreatedAt time.Time
}

func (BookRecord) TableName() string {
	return "books"
}

func NewBookRecord(book Book, position int) BookRecord {
	return BookRecord{
		Position: position,
		Title:    book.Title,
		Author:   book.Author,
		Year:     book.Year,
		Genre:    book.Genre,
		Read:     book.Read,
	}
}

func (r BookRecord) Book() Book {
	return Book{
		Title:  r.Title,
		Author: r.Author,
		Year:   r.Year,
		Genre:  r.Genre,
		Read:   r.Read,
	}
}
