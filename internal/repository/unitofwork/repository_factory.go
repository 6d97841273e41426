package unitofwork

import "context"

// RepositoryFactory hands out short-lived units of work over a shared connection.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
