package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/config"
)

var (
	dbPath     string
	configPath string
	nowFlag    string

	// RootCmd is the root command for menuwise
	RootCmd = &cobra.Command{
		Use:   "menuwise",
		Short: "Sales, waste and demand analytics for a canteen menu",
		Long: `menuwise records daily sales and waste per menu item and turns them into
operational insight: sales trends, per-item profitability, weekday patterns,
a short demand forecast and prioritized recommendations.

Quick Start:
  1. menuwise seed            # or record real sales with 'menuwise record'
  2. menuwise recommend
  3. menuwise forecast

Reports:
  trends, menu, patterns, forecast, waste, recommend, summary

Data:
  record, catalog, seed, status

Long-running:
  watch    re-run recommendations whenever the database changes
  digest   print recommendations and a forecast on a cron schedule

Examples:
  # Record today's lunch sales
  menuwise record --item chapati --sold 42 --waste 3

  # Look at the last two weeks
  menuwise trends --days 14

  # Replay reports as of a past date
  menuwise recommend --now 2024-03-15`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := getDBPath(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "menuwise: canteen sales and waste analytics")
			fmt.Fprintln(out)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintln(out, "No data yet. Run 'menuwise seed' for sample data or 'menuwise record' to log sales.")
			} else {
				fmt.Fprintln(out, "Tip: Run 'menuwise recommend' to see what needs attention.")
			}
			fmt.Fprintln(out, "Run 'menuwise --help' for all commands.")
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.menuwise/menuwise.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/menuwise/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "compute reports as of this date (YYYY-MM-DD)")

	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(
		trendsCmd,
		menuCmd,
		patternsCmd,
		forecastCmd,
		wasteCmd,
		recommendCmd,
		summaryCmd,
		recordCmd,
		catalogCmd,
		seedCmd,
		statusCmd,
		watchCmd,
		digestCmd,
	)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// dataDir returns ~/.menuwise, creating it if needed.
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".menuwise")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create menuwise directory: %w", err)
	}
	return dir, nil
}

// getDBPath returns the database path from the --db flag, then the db_path
// setting, then the default. cfg may be nil.
func getDBPath(cfg *config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}

	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "menuwise.db"), nil
}

// getDefaultPIDFile returns the default PID file path for 'watch --daemon'.
func getDefaultPIDFile() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "watch.pid"), nil
}

// getDefaultLogFile returns the default log file path for 'watch --daemon'.
func getDefaultLogFile() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "watch.log"), nil
}
