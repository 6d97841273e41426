package dao

import (
	"context"
	"errors"
	"fmt"

	"varausjarjestelma-be/internal/repository/contract"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrClosed is reported for every operation attempted after Close.
var ErrClosed = errors.New("ominaisuus store is closed")

type sessionFunc func(ctx context.Context, repo contract.OminaisuusRepository) error

// withSession runs fn inside its own unit of work: begin, run, commit. Any error or panic rolls
// the transaction back, and the connection goes back to the pool on every path. Failures are
// logged here and returned for the caller to flatten.
func (d *OminaisuusDAO) withSession(ctx context.Context, operation string, details map[string]interface{}, fn sessionFunc) (err error) {
	sessionId := uuid.NewString()

	ctx, span := d.tracer.Start(ctx, "ominaisuus."+operation,
		trace.WithAttributes(
			attribute.String("ominaisuus.operation", operation),
			attribute.String("session.id", sessionId),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			d.fail(operation, sessionId, err, details)
		}
		span.End()
	}()

	if d.closed.Load() {
		return ErrClosed
	}

	uow := d.factory.NewUnitOfWork(ctx)
	if err = uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", operation, r)
		}
		if !uow.InTransaction() {
			return
		}
		if rbErr := uow.Rollback(); rbErr != nil {
			d.logger.Warn(module, "Rollback failed", map[string]interface{}{
				"operation":  operation,
				"session_id": sessionId,
				"error":      rbErr.Error(),
			})
		}
	}()

	if err = fn(ctx, uow.OminaisuusRepository()); err != nil {
		return err
	}

	if err = uow.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (d *OminaisuusDAO) fail(operation, sessionId string, err error, details map[string]interface{}) {
	fields := map[string]interface{}{
		"operation": operation,
		"error":     err,
	}
	if sessionId != "" {
		fields["session_id"] = sessionId
	}
	for k, v := range details {
		fields[k] = v
	}
	d.logger.Error(module, "Ominaisuus operation failed", fields)
}
