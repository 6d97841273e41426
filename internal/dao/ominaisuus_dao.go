// Package dao exposes the Ominaisuus record store. Every operation runs in its own short-lived
// session and transaction; failures are logged and reported to callers only as false or nil.
package dao

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"varausjarjestelma-be/internal/config"
	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/model"
	"varausjarjestelma-be/internal/pkg/logger"
	"varausjarjestelma-be/internal/repository/contract"
	"varausjarjestelma-be/internal/repository/specification"
	"varausjarjestelma-be/internal/repository/unitofwork"
	"varausjarjestelma-be/pkg/database"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	module     = "OminaisuusDAO"
	tracerName = "varausjarjestelma-be/internal/dao"
)

// exit is swapped in tests so the fail-fast path can be observed.
var exit = os.Exit

type OminaisuusDAO struct {
	factory  unitofwork.RepositoryFactory
	registry *database.Registry
	logger   logger.ILogger
	validate *validator.Validate
	tracer   trace.Tracer

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

type Option func(*OminaisuusDAO)

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *OminaisuusDAO) {
		d.tracer = tp.Tracer(tracerName)
	}
}

// New wires a store over an already open session factory and registry.
func New(factory unitofwork.RepositoryFactory, registry *database.Registry, log logger.ILogger, opts ...Option) *OminaisuusDAO {
	d := &OminaisuusDAO{
		factory:  factory,
		registry: registry,
		logger:   log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open connects to the configured postgres database and returns a ready store. A store that
// cannot reach its database is useless, so any failure here is logged and ends the process.
func Open(ctx context.Context, cfg *config.Config, log logger.ILogger, opts ...Option) *OminaisuusDAO {
	gormCfg := database.GormConfig{
		DSN:             cfg.Database.Connection,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	if gormCfg.DSN == "" {
		fatal(log, "connection factory", fmt.Errorf("DB_CONNECTION_STRING is not set"))
		return nil
	}
	return open(ctx, postgres.Open(gormCfg.DSN), gormCfg, log, opts...)
}

func open(ctx context.Context, dialector gorm.Dialector, gormCfg database.GormConfig, log logger.ILogger, opts ...Option) *OminaisuusDAO {
	db, err := database.Open(dialector, gormCfg)
	if err != nil {
		fatal(log, "connection factory", err)
		return nil
	}

	registry, err := database.NewRegistry(ctx, db, &model.Ominaisuus{})
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		fatal(log, "registry", err)
		return nil
	}

	log.Info(module, "Session factory created", nil)
	return New(unitofwork.NewRepositoryFactory(db), registry, log, opts...)
}

func fatal(log logger.ILogger, stage string, err error) {
	log.Error(module, "Failed to create session factory", map[string]interface{}{
		"stage": stage,
		"error": err,
	})
	_ = log.Sync()
	exit(1)
}

// FindAll returns every stored record ordered by id. The slice is empty for an empty table and
// nil when the query failed.
func (d *OminaisuusDAO) FindAll(ctx context.Context) []entity.Ominaisuus {
	var result []entity.Ominaisuus

	err := d.withSession(ctx, "find_all", nil, func(ctx context.Context, repo contract.OminaisuusRepository) error {
		all, err := repo.FindAll(ctx, specification.OrderBy{Field: "id"})
		if err != nil {
			return err
		}
		result = make([]entity.Ominaisuus, len(all))
		for i, o := range all {
			result[i] = *o
		}
		return nil
	})
	if err != nil {
		return nil
	}
	return result
}

// Insert stores the record and writes the assigned id back into it. Any id set by the caller
// is ignored.
func (d *OminaisuusDAO) Insert(ctx context.Context, ominaisuus *entity.Ominaisuus) bool {
	if ominaisuus == nil {
		d.fail("insert", "", fmt.Errorf("nil ominaisuus"), nil)
		return false
	}
	if err := d.validate.Struct(ominaisuus); err != nil {
		d.fail("insert", "", err, map[string]interface{}{"nimi": ominaisuus.Nimi})
		return false
	}

	record := *ominaisuus
	err := d.withSession(ctx, "insert", map[string]interface{}{"nimi": ominaisuus.Nimi}, func(ctx context.Context, repo contract.OminaisuusRepository) error {
		return repo.Create(ctx, &record)
	})
	if err != nil {
		return false
	}

	ominaisuus.Id = record.Id
	d.logger.Debug(module, "Ominaisuus inserted", map[string]interface{}{"id": record.Id})
	return true
}

// Find returns the record with the given id, or nil when there is none or the lookup failed.
func (d *OminaisuusDAO) Find(ctx context.Context, id int) *entity.Ominaisuus {
	var found *entity.Ominaisuus

	err := d.withSession(ctx, "find", map[string]interface{}{"id": id}, func(ctx context.Context, repo contract.OminaisuusRepository) error {
		var err error
		found, err = repo.FindOne(ctx, specification.ByID{ID: id})
		return err
	})
	if err != nil {
		return nil
	}
	if found == nil {
		d.logger.Warn(module, "Ominaisuus not found", map[string]interface{}{"id": id})
	}
	return found
}

// Update copies Nimi and Kuvaus from changes onto the stored record with the given id. The
// lookup and the write share one transaction. A missing record is reported as false.
func (d *OminaisuusDAO) Update(ctx context.Context, id int, changes *entity.Ominaisuus) bool {
	details := map[string]interface{}{"id": id}
	if changes == nil {
		d.fail("update", "", fmt.Errorf("nil ominaisuus"), details)
		return false
	}

	err := d.withSession(ctx, "update", details, func(ctx context.Context, repo contract.OminaisuusRepository) error {
		target, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return err
		}
		if target == nil {
			return fmt.Errorf("update ominaisuus %d: %w", id, contract.ErrNotFound)
		}

		target.Nimi = changes.Nimi
		target.Kuvaus = changes.Kuvaus
		if err := d.validate.Struct(target); err != nil {
			return err
		}

		return repo.Update(ctx, target)
	})
	return err == nil
}

// Delete removes the stored record identified by the given instance's id.
func (d *OminaisuusDAO) Delete(ctx context.Context, ominaisuus *entity.Ominaisuus) bool {
	if ominaisuus == nil {
		d.fail("delete", "", fmt.Errorf("nil ominaisuus"), nil)
		return false
	}

	err := d.withSession(ctx, "delete", map[string]interface{}{"id": ominaisuus.Id}, func(ctx context.Context, repo contract.OminaisuusRepository) error {
		return repo.Delete(ctx, ominaisuus.Id)
	})
	return err == nil
}

// Close releases the session factory and destroys the registry. Later calls, and calls on a
// nil store, return the result of the first one.
func (d *OminaisuusDAO) Close() error {
	if d == nil {
		return nil
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		d.closeErr = d.registry.Destroy()
		if d.closeErr != nil {
			d.logger.Error(module, "Failed to destroy registry", map[string]interface{}{"error": d.closeErr})
			return
		}
		d.logger.Info(module, "Session factory closed", nil)
	})
	return d.closeErr
}
