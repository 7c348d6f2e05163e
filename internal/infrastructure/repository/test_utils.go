package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB creates an in-memory SQLite database with the catalog schema
// migrated, for repository tests.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&VideoModel{},
		&CategoryModel{},
		&GenreModel{},
		&CastMemberModel{},
	)
	require.NoError(t, err)

	return db
}
