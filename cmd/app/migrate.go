package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		l, err := logger.New(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		conn, err := db.Open(cfg, l)
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return errors.Wrap(err, "get sql db")
		}
		defer sqlDB.Close()

		if err := db.Migrate(conn, cfg.DBDriver, l); err != nil {
			return err
		}
		l.Info("Migrations applied.")
		return nil
	},
}
