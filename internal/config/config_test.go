package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty temp tree and unsets FOLIO_*
// variables; t.Setenv restores them afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{
		"FOLIO_CONFIG", "FOLIO_BACKEND", "FOLIO_DB", "FOLIO_REDIS_ADDR", "FOLIO_REDIS_DB",
		"FOLIO_REDIS_PASSWORD", "FOLIO_POSTGRES_DSN", "FOLIO_STORAGE_KEY",
		"FOLIO_LOG_USE_CASES", "FOLIO_MAX_IMAGE_BYTES", "FOLIO_MAX_DOCUMENT_BYTES", "FOLIO_SERVE_ADDR",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, filepath.Join(dir, ".folio", "folio.db"), cfg.DBPath)
	assert.Equal(t, "folio-document", cfg.StorageKey)
	assert.Equal(t, int64(5<<20), cfg.MaxImageBytes)
	assert.Equal(t, 5<<20, cfg.MaxDocBytes)
	assert.Equal(t, ":8080", cfg.ServeAddr)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "folio", "config.yaml"), `
backend: redis
redis:
  addr: cache:6380
  db: 2
storage_key: portfolio
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "portfolio", cfg.StorageKey)
	assert.Equal(t, ":8080", cfg.ServeAddr, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "backend: redis\nserve_addr: :9000\n")
	t.Setenv("FOLIO_CONFIG", path)
	t.Setenv("FOLIO_BACKEND", "memory")
	t.Setenv("FOLIO_LOG_USE_CASES", "true")
	t.Setenv("FOLIO_MAX_IMAGE_BYTES", "1024")
	t.Setenv("FOLIO_MAX_DOCUMENT_BYTES", "4096")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.MaxDocBytes)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, ":9000", cfg.ServeAddr)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, int64(1024), cfg.MaxImageBytes)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "FOLIO_STORAGE_KEY=from-dotenv\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.StorageKey)
}

func TestLoad_InvalidNumbersIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_MAX_IMAGE_BYTES", "lots")
	t.Setenv("FOLIO_REDIS_DB", "-3")
	t.Setenv("FOLIO_MAX_DOCUMENT_BYTES", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(5<<20), cfg.MaxImageBytes)
	assert.Equal(t, 5<<20, cfg.MaxDocBytes)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "xdg", "folio", "config.yaml"), "backend: [unclosed")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"memory", func(c *Config) { c.Backend = BackendMemory; c.DBPath = "" }, true},
		{"unknown backend", func(c *Config) { c.Backend = "mongo" }, false},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, false},
		{"redis without addr", func(c *Config) { c.Backend = BackendRedis; c.Redis.Addr = "" }, false},
		{"postgres without dsn", func(c *Config) { c.Backend = BackendPostgres }, false},
		{"empty key", func(c *Config) { c.StorageKey = "" }, false},
		{"zero image limit", func(c *Config) { c.MaxImageBytes = 0 }, false},
		{"negative document limit", func(c *Config) { c.MaxDocBytes = -1 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.DBPath = "/tmp/folio.db"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
