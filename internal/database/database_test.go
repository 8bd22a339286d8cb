package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cookmate/backend/config"
	"github.com/cookmate/backend/internal/database"
	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/testhelpers"
)

func TestNewSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "cookmate.db"),
	}

	db, err := database.New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.RunMigrations(db, "../../migrations", zap.NewNop()))
	require.NoError(t, database.HealthCheck(context.Background(), db))

	user := &models.User{Email: "db@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	assert.NotZero(t, user.ID)
}

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := database.New(&config.Config{DBDriver: "mysql"}, zap.NewNop())
	assert.Error(t, err)
}

func TestHealthCheckAfterClose(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "closed.db")}
	db, err := database.New(cfg, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, database.Close(db))
	assert.Error(t, database.HealthCheck(context.Background(), db))
}

func TestMigrationsAndRollback(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t, "../../migrations")

	// a second run applies nothing
	require.NoError(t, database.RunMigrations(db, "../../migrations", zap.NewNop()))

	var applied int64
	require.NoError(t, db.Table("schema_migrations").Count(&applied).Error)
	assert.Equal(t, int64(1), applied)

	name, err := database.Rollback(db, "../../migrations", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "001_init.sql", name)
	assert.False(t, db.Migrator().HasTable("favorite_recipes"))

	_, err = database.Rollback(db, "../../migrations", zap.NewNop())
	assert.Error(t, err)
}
