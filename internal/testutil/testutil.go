// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"Scoops/config"
	"Scoops/pkg/database"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const Secret = "test-secret-0123456789abcdefghijklmnop"

// NewDB returns a migrated in-memory SQLite database private to t.
// A single connection keeps every statement on the same in-memory store,
// so code under test must use the transaction handle inside transactions.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func NewRedis(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return rds, mr
}

// Config is a valid configuration with every default applied.
func Config(t testing.TB) *config.Config {
	t.Helper()
	conf, err := config.Parse([]byte(fmt.Sprintf(`
jwt:
  secret: %q
database:
  dsn: "sqlite"
pix:
  salt: "test-salt"
seed:
  admin_password: "admin123"
`, Secret)))
	require.NoError(t, err)
	return conf
}
