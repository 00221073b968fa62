// Package testdb opens a migrated in-memory database for package tests.
package testdb

import (
	"testing"

	"github.com/Rakhulsr/go-storefront/app/models/migrations"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dsn = "file::memory:?_pragma=foreign_keys(1)"

// New returns a fresh database with every model migrated. Each call gets
// its own in-memory database, closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}
