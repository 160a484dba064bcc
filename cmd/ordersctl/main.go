// Command ordersctl runs maintenance tasks against the orders store.
package main

import (
	"fmt"
	"os"

	"storefront_orders/internal/config"
	"storefront_orders/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var Version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Maintenance commands for the storefront orders service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(stockCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(reconcileCmd())

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and initializes logging for a command.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Options{Level: cfg.Log.Level, Format: "console", Output: "stdout"}, cfg.App.Env); err != nil {
		return nil, err
	}
	return cfg, nil
}
