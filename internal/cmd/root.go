package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/matthieukhl/salesgen/internal/config"
	"github.com/matthieukhl/salesgen/internal/logger"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "salesgen",
	Short: "salesgen - synthetic sales dataset generator",
	Long: `salesgen generates four years (2022-01-01 to 2025-12-31) of realistic 
daily sales records across regions, sales persons and products.

Prices follow seasonal, weekday and growth trends plus each person's
performance, so the dataset looks natural in spreadsheet dashboards.
The CSV can be imported directly by the spreadsheet's dummy data dialog,
or loaded into a MySQL compatible database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./config.yaml, ./deploy/, $HOME/.salesgen/)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the logger
func setup() (*config.Config, io.Closer, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	closer, err := logger.Init(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return cfg, closer, nil
}
