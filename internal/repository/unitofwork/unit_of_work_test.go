package unitofwork

import (
	"context"
	"testing"

	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkCommit(t *testing.T) {
	factory := NewRepositoryFactory(testdb.New(t))
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	assert.True(t, uow.InTransaction())
	require.NoError(t, uow.OminaisuusRepository().Create(ctx, &entity.Ominaisuus{Nimi: "Wifi"}))
	require.NoError(t, uow.Commit())
	assert.False(t, uow.InTransaction())

	count, err := factory.NewUnitOfWork(ctx).OminaisuusRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUnitOfWorkRollback(t *testing.T) {
	factory := NewRepositoryFactory(testdb.New(t))
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OminaisuusRepository().Create(ctx, &entity.Ominaisuus{Nimi: "Wifi"}))
	require.NoError(t, uow.Rollback())

	count, err := factory.NewUnitOfWork(ctx).OminaisuusRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUnitOfWorkStateErrors(t *testing.T) {
	factory := NewRepositoryFactory(testdb.New(t))
	ctx := context.Background()

	uow := factory.NewUnitOfWork(ctx)
	assert.ErrorIs(t, uow.Commit(), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction)

	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), ErrTransactionActive)
	require.NoError(t, uow.Rollback())
}
