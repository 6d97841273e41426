// Package testdb opens throwaway in-memory databases for package tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"varausjarjestelma-be/internal/model"
	"varausjarjestelma-be/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a gorm handle on a private in-memory SQLite database with the ominaisuus table
// created.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db := open(t, t.Name())
	require.NoError(t, db.AutoMigrate(&model.Ominaisuus{}))
	return db
}

// NewEmpty is New without the schema, for registry validation tests.
func NewEmpty(t testing.TB) *gorm.DB {
	t.Helper()

	return open(t, t.Name()+"_empty")
}

// The pool is limited to one connection so the in-memory database outlives every session and
// transactions never contend for locks.
func open(t testing.TB, name string) *gorm.DB {
	t.Helper()

	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	cfg := database.DefaultGormConfig(dsn)
	cfg.LogLevel = "silent"
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1

	db, err := database.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
