// Package interfaces documents the extension points of the library tracker.
//
// # Storage
//
// storage.Store (internal/storage/store.go) loads and saves the whole library:
//
//   - storage.JSONFileStore: JSON array in a single file (default)
//   - books.Repository: SQLite rows via gorm (internal/database/books)
//
// # Adding a New Backend
//
//  1. Implement Load and Save, wrapping failures in storage.ErrLoad / storage.ErrSave.
//     A store that has never been written must load as an empty library.
//
//  2. Add a backend name to internal/config/constants.go and a case to cli.OpenStore.
//
//  3. Add a compile-time check to checks.go:
//
//     var _ storage.Store = (*MyStore)(nil)
//
// # Exporters
//
// exporters.BookExporter (internal/exporters/generic.go) turns the library into
// another format. exporters.MarkdownExporter writes Obsidian notes.
package interfaces
