// Package database provides the SQLite backend for the library.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── books/           # Whole-library load and save
//
// # Usage
//
//	db, err := database.NewDatabase("./shelf.db")
//	repo := books.NewRepository(db.DB)
//	library, err := repo.Load()
//
// books.Repository implements storage.Store, so the menu and the exporters
// never need to know which backend they are talking to.
package database
