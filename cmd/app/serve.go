package main

import (
	"github.com/spf13/cobra"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.New()
		if err := a.Err(); err != nil {
			return err
		}
		a.Run()
		return nil
	},
}
