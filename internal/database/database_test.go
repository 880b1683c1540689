package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shelf.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable("books"))
	assert.FileExists(t, dbPath)
}

func TestNewDatabase_ReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shelf.db")

	first, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer second.Close()

	assert.True(t, second.DB.Migrator().HasColumn("books", "position"))
}
