package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names a document storage implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

const (
	defaultStorageKey    = "folio-document"
	defaultMaxImageBytes = 5 << 20
	defaultMaxDocBytes   = 5 << 20
	defaultServeAddr     = ":8080"
	defaultRedisAddr     = "localhost:6379"
)

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config holds all runtime configuration for folio.
type Config struct {
	Backend       Backend     `yaml:"backend"`
	DBPath        string      `yaml:"db_path"`
	Redis         RedisConfig `yaml:"redis"`
	PostgresDSN   string      `yaml:"postgres_dsn"`
	StorageKey    string      `yaml:"storage_key"`
	LogUseCases   bool        `yaml:"log_use_cases"`
	MaxImageBytes int64       `yaml:"max_image_bytes"`
	MaxDocBytes   int         `yaml:"max_document_bytes"`
	ServeAddr     string      `yaml:"serve_addr"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	cfg := Config{
		Backend:       BackendSQLite,
		Redis:         RedisConfig{Addr: defaultRedisAddr},
		StorageKey:    defaultStorageKey,
		MaxImageBytes: defaultMaxImageBytes,
		MaxDocBytes:   defaultMaxDocBytes,
		ServeAddr:     defaultServeAddr,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".folio", "folio.db")
	}
	return cfg
}

// Load builds the configuration from, in increasing priority: defaults, the
// YAML config file, a .env file in the working directory, and FOLIO_*
// environment variables. A missing config file or .env is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	path, err := Path()
	if err == nil {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Path returns the config file location: FOLIO_CONFIG when set, otherwise
// folio/config.yaml under XDG_CONFIG_HOME or ~/.config.
func Path() (string, error) {
	if p := os.Getenv("FOLIO_CONFIG"); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "folio", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio", "config.yaml"), nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FOLIO_BACKEND"); v != "" {
		c.Backend = Backend(v)
	}
	if v := os.Getenv("FOLIO_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("FOLIO_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("FOLIO_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("FOLIO_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Redis.DB = n
		}
	}
	if v := os.Getenv("FOLIO_POSTGRES_DSN"); v != "" {
		c.PostgresDSN = v
	}
	if v := os.Getenv("FOLIO_STORAGE_KEY"); v != "" {
		c.StorageKey = v
	}
	if v := os.Getenv("FOLIO_LOG_USE_CASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOLIO_MAX_IMAGE_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.MaxImageBytes = n
		}
	}
	if v := os.Getenv("FOLIO_MAX_DOCUMENT_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxDocBytes = n
		}
	}
	if v := os.Getenv("FOLIO_SERVE_ADDR"); v != "" {
		c.ServeAddr = v
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return errors.New("sqlite backend requires a database path (FOLIO_DB)")
		}
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis backend requires an address (FOLIO_REDIS_ADDR)")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres backend requires a DSN (FOLIO_POSTGRES_DSN)")
		}
	default:
		return fmt.Errorf("unknown backend %q (want sqlite, memory, redis or postgres)", c.Backend)
	}
	if c.StorageKey == "" {
		return errors.New("storage key cannot be empty")
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("max image bytes must be positive, got %d", c.MaxImageBytes)
	}
	if c.MaxDocBytes <= 0 {
		return fmt.Errorf("max document bytes must be positive, got %d", c.MaxDocBytes)
	}
	return nil
}
