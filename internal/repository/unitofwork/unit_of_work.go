package unitofwork

import (
	"context"

	"varausjarjestelma-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	InTransaction() bool

	OminaisuusRepository() contract.OminaisuusRepository
}
