// Package databasetest provides an in-memory database for tests.
package databasetest

import (
	"testing"

	"agrodog/cmd/internal/domain/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens a migrated in-memory SQLite database that lives as long as the test.
// The pool holds a single connection, so queries issued inside a transaction
// must use the transaction context.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err = database.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate: %v", err)
	}

	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
