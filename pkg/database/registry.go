package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Registry owns the pooled connection behind a gorm handle together with the models mapped
// onto it. It lives for the whole process and is destroyed exactly once at shutdown.
type Registry struct {
	sqlDB  *sql.DB
	models []interface{}

	once sync.Once
	err  error
}

// NewRegistry checks that the database answers and that every mapped table is present.
// It never creates or alters tables.
func NewRegistry(ctx context.Context, db *gorm.DB, models ...interface{}) (*Registry, error) {
	if db == nil {
		return nil, fmt.Errorf("registry: nil database handle")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("registry: ping database: %w", err)
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, m := range models {
		if !migrator.HasTable(m) {
			stmt := &gorm.Statement{DB: db}
			name := fmt.Sprintf("%T", m)
			if err := stmt.Parse(m); err == nil {
				name = stmt.Schema.Table
			}
			return nil, fmt.Errorf("registry: mapped table %q does not exist", name)
		}
	}

	return &Registry{
		sqlDB:  sqlDB,
		models: models,
	}, nil
}

func (r *Registry) Models() []interface{} {
	if r == nil {
		return nil
	}
	return r.models
}

// Destroy closes the connection pool. Safe on a nil registry and on repeated calls; the
// first close error is returned every time.
func (r *Registry) Destroy() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		if r.sqlDB != nil {
			r.err = r.sqlDB.Close()
		}
	})
	return r.err
}
