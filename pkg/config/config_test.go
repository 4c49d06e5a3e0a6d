package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mebel-store/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mebel-store", cfg.App.Name)
	assert.Equal(t, "remote", cfg.Storage.Mode)
	assert.Equal(t, config.MirrorMemory, cfg.Mirror.Driver)
	// Sin SUPABASE_URL no hay backend remoto.
	assert.Equal(t, config.BackendNone, cfg.Remote.Backend)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 8, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "3")
	t.Setenv("STORAGE_MODE", "LOCAL")
	t.Setenv("MIRROR_DRIVER", "sqlite")
	t.Setenv("ASSETS_TRUSTED_HOSTS", "cdn.mebel.ru, img.mebel.ru ,")
	t.Setenv("DB_FORCE_IPV4", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendPostgREST, cfg.Remote.Backend)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, config.MirrorSQLite, cfg.Mirror.Driver)
	assert.Equal(t, []string{"cdn.mebel.ru", "img.mebel.ru"}, cfg.Assets.TrustedHosts)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestLoad_DotEnvDebajoDelEntorno(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	env := "APP_NAME=desde-dotenv\nHTTP_PORT=9090\nSTORAGE_MODE=local\n"
	require.NoError(t, os.WriteFile(".env", []byte(env), 0o600))
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "desde-dotenv", cfg.App.Name)
	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, 7070, cfg.HTTP.Port, "el entorno tiene prioridad sobre .env")
}

func TestLoad_ValoresInvalidos(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REMOTE_BACKEND", "mongo")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "mebel", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/mebel?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", db.ConnectionString())
}
