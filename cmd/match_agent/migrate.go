package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/db"
)

var migrateCommand = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrateCmd,
}

func init() {
	rootCmd.AddCommand(migrateCommand)
}

func runMigrateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("a database URL is required (flag, config file, or DATABASE_URL)")
	}

	migrator, err := db.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer migrator.Close() //nolint:errcheck // close error is not actionable after Up

	return migrator.Up()
}
