package database

import (
	"fmt"
	"net/url"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Register opens the connection described by cfg and migrates the model
// sources. Connection failures are not handled here; unreachable or invalid
// credentials propagate to the caller.
func Register(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Backend {
	case BackendMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s",
			cfg.ConnectionParams["user"],
			cfg.ConnectionParams["password"],
			cfg.ConnectionParams["host"],
			cfg.ConnectionParams["port"],
			cfg.ConnectionParams["database"],
			url.QueryEscape(cfg.Timezone),
		)
		dialector = mysql.Open(dsn)
	case BackendSQLite:
		dialector = sqlite.Open(cfg.ConnectionParams["file_path"])
	default:
		return nil, fmt.Errorf("unsupported database backend: %s", cfg.Backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Backend, err)
	}

	if err := db.AutoMigrate(cfg.ModelSources...); err != nil {
		return nil, fmt.Errorf("failed to migrate models: %w", err)
	}

	return db, nil
}
