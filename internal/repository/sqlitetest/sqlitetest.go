// Package sqlitetest opens throwaway SQLite catalogs for tests.
package sqlitetest

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"catalog_service/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Logger returns a logrus logger that discards output.
func Logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Open returns a migrated, empty catalog database that lives for the test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps SQLite from reporting SQLITE_BUSY while a
	// transaction is open.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

// OpenSeeded returns a catalog database loaded with the reference data set.
func OpenSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	db := Open(t)
	require.NoError(t, repository.Seed(context.Background(), db, Logger()))
	return db
}
