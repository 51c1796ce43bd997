package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/output"
	"github.com/blackwell-systems/menuwise/internal/watcher"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database contents and watch daemon state",
	Long: `Display the database location, the number of active menu items, how many
sales records are stored and the date range they cover, and whether the
'watch' daemon is running.`,
	Args: cobra.NoArgs,
	RunE: withEnv(runStatus),
}

func runStatus(cmd *cobra.Command, e *env, args []string) error {
	stats, err := e.store.GetStats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, output.RenderStatus(stats, e.dbPath))

	pidFile, err := getDefaultPIDFile()
	if err != nil {
		return err
	}
	running, err := watcher.IsDaemonRunning(pidFile)
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	state := "stopped"
	if running {
		state = "running"
	}
	fmt.Fprintf(out, "%-12s %s\n", "Watch:", state)
	return nil
}
