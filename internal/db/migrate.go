package db

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
)

//go:embed migrations
var Migrations embed.FS

// Migrate runs all pending goose migrations against the pool behind db.
func Migrate(db *gorm.DB, driver string, l *zap.Logger) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}

	goose.SetLogger(zap.NewStdLog(l.Named("goose")))
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return errors.Wrap(err, "sub migrations fs")
	}

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err := goose.Up(sqlDB, "."); err != nil {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite3", nil
	case config.DriverPostgres:
		return "postgres", nil
	default:
		return "", errors.New(fmt.Sprintf("unknown driver for goose dialect: %q", driver))
	}
}
