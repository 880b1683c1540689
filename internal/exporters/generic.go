package exporters

import "github.com/mrlokans/shelf/internal/entities"

type BookExporter interface {
	Export(books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed int `json:"books_processed"`
	BooksFailed    int `json:"books_failed"`
}
