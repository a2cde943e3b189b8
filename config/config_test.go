package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  env: test
  log_level: debug
server:
  http: 9090
  cors_origins: ["http://localhost:3000"]
database:
  driver: postgres
  dsn: "host=localhost user=scoops dbname=scoops"
jwt:
  secret: "UmaChaveSuperSecretaEComPeloMenos32Caracteres!"
  access_ttl: 90m
inventory:
  low_stock_threshold: 3
`

func TestParseAppliesDefaults(t *testing.T) {
	conf, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.Server.Http)
	assert.Equal(t, "/api", conf.Server.BasePath)
	assert.Equal(t, DriverPostgres, conf.Database.Driver)
	assert.Equal(t, 90*time.Minute, conf.Jwt.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, conf.Jwt.RefreshTTL)
	assert.Equal(t, "scoops", conf.Jwt.Issuer)
	assert.Equal(t, 3, conf.Inventory.LowStockThreshold)
	assert.Equal(t, 5, conf.Inventory.TopProducts)
	assert.Equal(t, StorageLocal, conf.Storage.Driver)
	assert.Equal(t, "127.0.0.1:6379", conf.Redis.Addr())
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "an-env-secret-that-is-long-enough!!")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("ADMIN_EMAIL", "boss@scoops.com")

	conf, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "an-env-secret-that-is-long-enough!!", conf.Jwt.Secret)
	assert.Equal(t, 7000, conf.Server.Http)
	assert.Equal(t, "boss@scoops.com", conf.Seed.AdminEmail)
}

func TestValidateFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing secret",
			content: "database:\n  dsn: x\n",
			wantErr: "jwt.secret (JWT_SECRET) is required",
		},
		{
			name:    "short secret",
			content: "database:\n  dsn: x\njwt:\n  secret: short\n",
			wantErr: "at least 32 bytes",
		},
		{
			name:    "missing dsn",
			content: "jwt:\n  secret: UmaChaveSuperSecretaEComPeloMenos32Caracteres!\n",
			wantErr: "database.dsn",
		},
		{
			name:    "unknown driver",
			content: "database:\n  driver: oracle\n  dsn: x\njwt:\n  secret: UmaChaveSuperSecretaEComPeloMenos32Caracteres!\n",
			wantErr: `database.driver "oracle"`,
		},
		{
			name:    "oss without bucket",
			content: "database:\n  dsn: x\njwt:\n  secret: UmaChaveSuperSecretaEComPeloMenos32Caracteres!\nstorage:\n  driver: oss\n",
			wantErr: "storage.oss.bucket",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			t.Setenv("DATABASE_DSN", "")
			t.Setenv("DATABASE_DRIVER", "")
			t.Setenv("STORAGE_DRIVER", "")
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	conf, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "test", conf.App.Env)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
