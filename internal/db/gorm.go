package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
)

// Open connects to the configured database. It does not touch the schema.
func Open(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}

	newLogger := logger.New(zap.NewStdLog(l.Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		Colorful:                  false,
		IgnoreRecordNotFoundError: true,
	})

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

// NewGormClient opens the pool, migrates it when DB_MIGRATE is set and closes it on stop.
func NewGormClient(lc fx.Lifecycle, cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	db, err := Open(cfg, l)
	if err != nil {
		return nil, err
	}

	if cfg.DBMigrate {
		if err := Migrate(db, cfg.DBDriver, l); err != nil {
			return nil, errors.Wrap(err, "migrate bookmarks")
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			l.Info("Closing database pool.")
			return sqlDB.Close()
		},
	})

	return db, nil
}
