// Package config carga la configuración: defaults, luego un YAML opcional
// (CONFIG_FILE) y al final variables de entorno, que siempre ganan.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"farm-records/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port           string      `yaml:"port"`
	FrontendURL    string      `yaml:"frontend_url"`
	RequestTimeout string      `yaml:"request_timeout"`
	Store          StoreConfig `yaml:"store"`
	Log            LogConfig   `yaml:"log"`
}

type StoreConfig struct {
	Driver     string `yaml:"driver"`
	DSN        string `yaml:"dsn"`
	SQLitePath string `yaml:"sqlite_path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		FrontendURL:    "http://localhost:3000",
		RequestTimeout: "30s",
		Store: StoreConfig{
			Driver:     DriverMemory,
			SQLitePath: "data/farm-records.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "farm-records",
		},
	}
}

// Load arma la configuración final y la valida.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Port, "PORT")
	setFromEnv(&cfg.FrontendURL, "FRONTEND_URL")
	setFromEnv(&cfg.RequestTimeout, "REQUEST_TIMEOUT")
	setFromEnv(&cfg.Store.Driver, "STORE_DRIVER")
	setFromEnv(&cfg.Store.DSN, "DB_DSN")
	setFromEnv(&cfg.Store.SQLitePath, "SQLITE_PATH")
	setFromEnv(&cfg.Log.Level, "LOG_LEVEL")
	setFromEnv(&cfg.Log.Format, "LOG_FORMAT")
	setFromEnv(&cfg.Log.App, "APP_NAME")

	// Compatibilidad: con DB_DSN y sin driver explícito se usa Postgres.
	if os.Getenv("STORE_DRIVER") == "" && os.Getenv("DB_DSN") != "" {
		cfg.Store.Driver = DriverPostgres
	}
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store driver %q requires DB_DSN", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q (memory, postgres, sqlite)", c.Store.Driver)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout interpreta RequestTimeout. Vacío o "0" desactiva el timeout.
func (c Config) Timeout() (time.Duration, error) {
	if c.RequestTimeout == "" || c.RequestTimeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid request timeout %q: %w", c.RequestTimeout, err)
	}
	return d, nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	}
}
