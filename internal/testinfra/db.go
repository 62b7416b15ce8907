// Package testinfra provides throwaway stores for tests.
package testinfra

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"exerciselog/database"
)

// NewSQLiteDB returns a migrated in-memory database private to t.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.MigrateDatabase(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
