package database

import (
	"log/slog"
	"path/filepath"

	"admind/internal/config"
	"admind/internal/models"
)

// Backend is the persistence engine selector.
type Backend string

const (
	BackendMySQL  Backend = "mysql"
	BackendSQLite Backend = "sqlite"
)

// Timezone is fixed for all backends; connections are opened without
// timezone conversion (UseTimezone=false).
const Timezone = "Asia/Shanghai"

// Config is the complete, backend-specific persistence configuration
// produced by Resolve. It is created once per process start and never
// mutated afterwards.
type Config struct {
	Backend          Backend
	ConnectionParams map[string]string
	ModelSources     []interface{}
	// DefaultConnection always equals Backend.
	DefaultConnection Backend
	UseTimezone       bool
	Timezone          string
}

// Resolve maps the environment-supplied database type token to a persistence
// configuration. It is total: an unrecognized or absent token degrades to the
// sqlite fallback instead of failing, with a warning so operators can spot a
// typo'd production value.
//
// MySQL credential fields are copied verbatim; absent values stay empty and
// surface later as a connection error from Register.
func Resolve(logger *slog.Logger, dbType string, creds config.MySQLCredentials, baseDir string) Config {
	var backend Backend
	var params map[string]string

	switch dbType {
	case "mysql":
		logger.Info("using mysql database")
		backend = BackendMySQL
		params = map[string]string{
			"host":     creds.Host,
			"port":     creds.Port,
			"user":     creds.User,
			"password": creds.Password,
			"database": creds.Database,
		}
	case "sqlite":
		logger.Info("using sqlite database")
		backend = BackendSQLite
		params = map[string]string{
			"file_path": filepath.Join(baseDir, "db.sqlite3"),
		}
	default:
		logger.Warn("unrecognized database type, falling back to sqlite",
			slog.String("database_type", dbType))
		backend = BackendSQLite
		params = map[string]string{
			"file_path": filepath.Join(baseDir, "db.sqlite3"),
		}
	}

	return Config{
		Backend:           backend,
		ConnectionParams:  params,
		ModelSources:      modelSources(),
		DefaultConnection: backend,
		UseTimezone:       false,
		Timezone:          Timezone,
	}
}

// modelSources is the fixed list of model prototypes migrated at registration.
func modelSources() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Menu{},
	}
}
