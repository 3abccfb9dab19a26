package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cafes-backend/config"
	"cafes-backend/internal/logger"
)

var configPath string

// rootCmd represents the base command. Without a subcommand it serves.
var rootCmd = &cobra.Command{
	Use:   "cafesd",
	Short: "Cafes Marloy back office API",
	Long: `cafesd serves the Cafes Marloy REST API for clients, suppliers, supplies,
machines, technicians, maintenances, consumptions and users.

Configuration comes from an optional yaml file (--config or CONFIG_PATH)
overlaid with environment variables such as DB_DRIVER, DB_HOST and DB_NAME.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "Path to a yaml config file (optional)")
}

// loadConfig reads the configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(cfg.Log.Level)
	if configPath != "" {
		logrus.Infof("configuration loaded from %s", configPath)
	} else {
		logrus.Info("configuration loaded from environment")
	}
	return cfg, nil
}
