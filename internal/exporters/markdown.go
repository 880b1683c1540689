package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/shelf/internal/entities"
	"github.com/mrlokans/shelf/internal/utils"
)

// MarkdownExporter writes one Obsidian-compatible note per book plus an index note.
type MarkdownExporter struct {
	OutputDir     string
	IndexFileName string
	now           func() time.Time
}

func NewMarkdownExporter(outputDir string) *MarkdownExporter {
	return &MarkdownExporter{
		OutputDir:     outputDir,
		IndexFileName: "index.md",
		now:           time.Now,
	}
}

func (exporter *MarkdownExporter) ensureDir() error {
	if err := os.MkdirAll(exporter.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

// GenerateMarkdown renders a single book note with YAML frontmatter.
func GenerateMarkdown(book *entities.Book, createdAt time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: book\n")
	fmt.Fprintf(&builder, "created_at: %s\n", createdAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "title: \"%s\"\n", escapeQuotes(book.Title))
	fmt.Fprintf(&builder, "author: \"%s\"\n", escapeQuotes(book.Author))
	fmt.Fprintf(&builder, "year: %d\n", book.Year)
	fmt.Fprintf(&builder, "genre: \"%s\"\n", escapeQuotes(book.Genre))
	fmt.Fprintf(&builder, "read: %t\n", book.Read)
	fmt.Fprintf(&builder, "tags: books\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", book.Title)
	fmt.Fprintf(&builder, "- **Author:** %s\n", book.Author)
	fmt.Fprintf(&builder, "- **Published:** %d\n", book.Year)
	fmt.Fprintf(&builder, "- **Genre:** %s\n", book.Genre)
	fmt.Fprintf(&builder, "- **Status:** %s\n", book.ReadStatus())

	return builder.String()
}

// GenerateIndex renders the index note linking every exported book, split by read status.
func GenerateIndex(books []entities.Book, names []string) string {
	var builder strings.Builder
	var read, unread []string

	for i, book := range books {
		link := fmt.Sprintf("- [[%s]] by %s (%d)", names[i], book.Author, book.Year)
		if book.Read {
			read = append(read, link)
		} else {
			unread = append(unread, link)
		}
	}

	fmt.Fprintf(&builder, "# Library\n\n")
	fmt.Fprintf(&builder, "## Read (%d)\n\n", len(read))
	for _, line := range read {
		fmt.Fprintln(&builder, line)
	}
	fmt.Fprintf(&builder, "\n## Unread (%d)\n\n", len(unread))
	for _, line := range unread {
		fmt.Fprintln(&builder, line)
	}

	return builder.String()
}

func (exporter *MarkdownExporter) exportBook(book entities.Book, name string) (string, error) {
	outputPath := filepath.Join(exporter.OutputDir, name+".md")
	content := GenerateMarkdown(&book, exporter.now())
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (exporter *MarkdownExporter) Export(books []entities.Book) (ExportResult, error) {
	var result ExportResult

	if err := exporter.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	titles := make([]string, len(books))
	for i, book := range books {
		titles[i] = book.Title
	}
	names := utils.UniqueFilenames(titles)
	for i, book := range books {
		if _, err := exporter.exportBook(book, names[i]); err != nil {
			log.Printf("Failed to export %q: %v", book.Title, err)
			result.BooksFailed++
			continue
		}
		result.BooksProcessed++
	}

	indexPath := filepath.Join(exporter.OutputDir, exporter.IndexFileName)
	if err := os.WriteFile(indexPath, []byte(GenerateIndex(books, names)), 0644); err != nil {
		return result, fmt.Errorf("failed to write index: %w", err)
	}

	return result, nil
}
