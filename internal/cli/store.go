package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/storage"
)

// StoreOptions selects and locates the storage backend.
type StoreOptions struct {
	Backend      string
	LibraryFile  string
	DatabasePath string
}

func (o StoreOptions) Validate() error {
	switch o.Backend {
	case config.BackendJSON:
		if o.LibraryFile == "" {
			return fmt.Errorf("library file path is required for the %s backend", o.Backend)
		}
	case config.BackendSQLite:
		if o.DatabasePath == "" {
			return fmt.Errorf("database path is required for the %s backend", o.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q (expected %q or %q)", o.Backend, config.BackendJSON, config.BackendSQLite)
	}
	return nil
}

// OpenStore returns the configured store and a function releasing its resources.
func OpenStore(opts StoreOptions) (storage.Store, func() error, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	if opts.Backend == config.BackendJSON {
		return storage.NewJSONFileStore(opts.LibraryFile), func() error { return nil }, nil
	}

	absDBPath, err := filepath.Abs(opts.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return books.NewRepository(db.DB), db.Close, nil
}
