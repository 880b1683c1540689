package interfaces

// This file contains compile-time interface implementation checks.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/exporters"
	"github.com/mrlokans/shelf/internal/storage"
)

// =============================================================================
// Storage
// =============================================================================

var _ storage.Store = (*storage.JSONFileStore)(nil)
var _ storage.Store = (*books.Repository)(nil)

// =============================================================================
// Export
// =============================================================================

var _ exporters.BookExporter = (*exporters.MarkdownExporter)(nil)
