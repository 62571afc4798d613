package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the complete application configuration.
// It is loaded once at process start and never mutated afterwards;
// components receive it by reference instead of re-reading the environment.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Logging  LoggingConfig
	Static   StaticConfig
	Database DatabaseConfig
}

// AppConfig contains application metadata.
type AppConfig struct {
	Title       string `envconfig:"APP_TITLE" default:"Admin Panel API"`
	Description string `envconfig:"APP_DESCRIPTION" default:"Admin panel backend"`
	Version     string `envconfig:"APP_VERSION" default:"0.1.0"`
	BaseDir     string `envconfig:"BASE_DIR" default:"."`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"9999" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// StaticConfig controls whether this process serves the bundled
// single-page frontend itself.
type StaticConfig struct {
	// LoadFromLocal is compared verbatim against "true"; any other value
	// (including absence) disables local static serving.
	LoadFromLocal string `envconfig:"LOAD_STATIC_FROM_LOCAL"`
	Dir           string `envconfig:"STATIC_DIR" default:"web/dist"`
}

// ServeLocal reports whether the process should mount the frontend bundle.
func (s StaticConfig) ServeLocal() bool {
	return s.LoadFromLocal == "true"
}

// DatabaseConfig carries the raw database selection token and the mysql
// credential fields. The MYXQL_* variable names are the deployed contract,
// nonstandard spelling included.
type DatabaseConfig struct {
	Type  string `envconfig:"DATABASE_TYPE"`
	MySQL MySQLCredentials
}

// MySQLCredentials holds mysql connection fields copied verbatim from the
// environment. Absent variables stay empty; no validation happens here —
// bad credentials surface as a connection error when the database is opened.
type MySQLCredentials struct {
	Host     string `envconfig:"MYXQL_HOST"`
	Port     string `envconfig:"MYXQL_PORT"`
	User     string `envconfig:"MYXQL_USER"`
	Password string `envconfig:"MYXQL_PASSWORD"`
	Database string `envconfig:"MYXQL_DATABASE"`
}

// Load loads configuration from the environment, reading an optional .env
// file first. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// resolvePaths normalizes the base directory to an absolute path so the
// sqlite file location does not depend on the working directory.
func (c *Config) resolvePaths() error {
	baseDir, err := filepath.Abs(c.App.BaseDir)
	if err != nil {
		return err
	}
	c.App.BaseDir = baseDir

	if !filepath.IsAbs(c.Static.Dir) {
		c.Static.Dir = filepath.Join(baseDir, c.Static.Dir)
	}
	return nil
}

// validate checks the loaded configuration. The mysql credential fields are
// deliberately excluded: they pass through untouched and fail late.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}
