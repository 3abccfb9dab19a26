package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cafes-backend/internal/db"
)

// migrateCmd creates or updates the schema and exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Create or update the tables of every entity in the configured database.
Existing rows are kept; columns are added but never dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Database.AutoMigrate = false

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	logrus.WithField("driver", cfg.Database.Driver).Info("schema is up to date")
	return nil
}
