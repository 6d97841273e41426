package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"varausjarjestelma-be/internal/config"
	"varausjarjestelma-be/internal/dao"
	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/model"
	"varausjarjestelma-be/internal/pkg/logger"
	"varausjarjestelma-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway PostgreSQL container with the ominaisuus table and returns
// its connection string.
func setupPostgres(t *testing.T) string {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("Skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("varaus_test"),
		postgres.WithUsername("varaus"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Schema fixture; the store itself only validates that the table exists
	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Ominaisuus{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	return dsn
}

func TestOminaisuusDAOPostgres(t *testing.T) {
	dsn := setupPostgres(t)
	ctx := context.Background()

	t.Setenv("DB_CONNECTION_STRING", dsn)
	t.Setenv("DB_LOG_LEVEL", "silent")
	cfg := config.Load()

	store := dao.Open(ctx, cfg, logger.NewNopLogger())
	require.NotNil(t, store)
	defer store.Close()

	wifi := &entity.Ominaisuus{Nimi: "Wifi", Kuvaus: "Wireless access"}
	require.True(t, store.Insert(ctx, wifi))
	assert.Equal(t, 1, wifi.Id)

	assert.Equal(t, &entity.Ominaisuus{Id: 1, Nimi: "Wifi", Kuvaus: "Wireless access"}, store.Find(ctx, 1))

	require.True(t, store.Update(ctx, 1, &entity.Ominaisuus{Nimi: "WiFi", Kuvaus: "Wireless access, 5GHz"}))
	assert.Equal(t, "Wireless access, 5GHz", store.Find(ctx, 1).Kuvaus)
	assert.False(t, store.Update(ctx, 2, &entity.Ominaisuus{Nimi: "ghost"}))

	require.True(t, store.Insert(ctx, &entity.Ominaisuus{Nimi: "Projektori"}))
	assert.Len(t, store.FindAll(ctx), 2)

	require.True(t, store.Delete(ctx, store.Find(ctx, 1)))
	assert.Nil(t, store.Find(ctx, 1))
	assert.False(t, store.Delete(ctx, wifi))
}
