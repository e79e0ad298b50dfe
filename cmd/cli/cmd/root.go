// Package cmd provides the CLI commands for ride-pricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ride-pricing/internal/config"
	"ride-pricing/internal/logging"
)

// Version is the CLI and service version
const Version = "1.0.0"

var (
	verbose bool

	// cfg is loaded once before any command runs
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ride-pricing",
	Short: "Fare computation service for ride-hailing requests",
	Long: `ride-pricing computes trip fares from distance, travel time,
vehicle class, and demand conditions.

Examples:
  ride-pricing serve
  ride-pricing price --distance-m 5000 --eta-sec 600 --class comfort
  ride-pricing rates`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if err := logging.Initialize(level, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ride-pricing version %s\n", Version)
	},
}
