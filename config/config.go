package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config represents the overall application configuration. It is built once
// by Load and treated as read-only afterwards.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port" env:"SERVER_PORT"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" env:"RATE_LIMIT_PER_SEC"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string        `yaml:"driver" env:"DB_DRIVER"`
	Host                   string        `yaml:"host" env:"DB_HOST"`
	Port                   int           `yaml:"port" env:"DB_PORT"`
	User                   string        `yaml:"user" env:"DB_USER"`
	Password               string        `yaml:"password" env:"DB_PASS"`
	Name                   string        `yaml:"name" env:"DB_NAME"`
	SSLMode                string        `yaml:"sslmode" env:"DB_SSLMODE"`
	Path                   string        `yaml:"path" env:"DB_PATH"`
	MaxOpenConns           int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns           int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetimeMinutes int           `yaml:"conn_max_lifetime_minutes" env:"DB_CONN_MAX_LIFETIME_MINUTES"`
	QueryTimeoutSeconds    int           `yaml:"query_timeout_seconds" env:"DB_QUERY_TIMEOUT_SECONDS"`
	QueryTimeout           time.Duration `yaml:"-"` // Derived from QueryTimeoutSeconds
	AutoMigrate            bool          `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// AuthConfig holds the password hashing configuration.
type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Load reads the configuration from the given yaml path, if any, and then
// overlays values found in the environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.RateLimitPerSec < 0 {
		cfg.Server.RateLimitPerSec = 0
	}
	if cfg.Server.RateLimitPerSec > 0 && cfg.Server.RateLimitBurst <= 0 {
		// A zero burst would reject every request.
		cfg.Server.RateLimitBurst = max(1, int(math.Ceil(cfg.Server.RateLimitPerSec*2)))
	}

	db := &cfg.Database
	if db.Driver == "" {
		db.Driver = DriverPostgres
	}
	if db.Host == "" {
		db.Host = "localhost"
	}
	if db.Port <= 0 {
		switch db.Driver {
		case DriverMySQL:
			db.Port = 3306
		default:
			db.Port = 5432
		}
	}
	if db.SSLMode == "" {
		db.SSLMode = "disable"
	}
	if db.Path == "" {
		db.Path = "cafes.db"
	}
	if db.MaxOpenConns <= 0 {
		db.MaxOpenConns = 10
	}
	if db.MaxIdleConns <= 0 {
		db.MaxIdleConns = db.MaxOpenConns
	}
	if db.ConnMaxLifetimeMinutes <= 0 {
		db.ConnMaxLifetimeMinutes = 30
	}
	if db.QueryTimeoutSeconds <= 0 {
		db.QueryTimeoutSeconds = 5
	}
	db.QueryTimeout = time.Duration(db.QueryTimeoutSeconds) * time.Second

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL:
		if c.Database.Name == "" {
			return fmt.Errorf("database name is required for driver %q (set DB_NAME)", c.Database.Driver)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}
