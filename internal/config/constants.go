package config

// Default paths and settings
const (
	// DefaultLibraryFile is where the JSON backend keeps the library
	DefaultLibraryFile = "library.txt"

	// DefaultDatabasePath is where the SQLite backend keeps the library
	DefaultDatabasePath = "./shelf.db"

	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)
