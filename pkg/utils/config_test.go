package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=checkout-payments\nPORT=9090\nDEBUG=true\nDB_NAME=payments\nDB_USER=svc\nDB_PASS=secret\nDB_MAX_CONNS=4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "checkout-payments", config.App.Name)
	assert.Equal(t, "9090", config.App.Port)
	assert.True(t, config.App.Debug)
	assert.Equal(t, "payments", config.Database.Name)
	assert.Equal(t, "svc", config.Database.User)
	assert.Equal(t, "secret", config.Database.Password)
	assert.Equal(t, int32(4), config.Database.MaxConns)
	assert.Equal(t, "localhost", config.Database.Host)
	assert.True(t, config.Database.AutoMigrate)
}

func TestLoadConfigFrom_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, "payment-api", config.App.Name)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
	assert.False(t, config.Database.AutoMigrate)
}
