package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/logger"
	"github.com/blackwell-systems/menuwise/internal/output"
	"github.com/blackwell-systems/menuwise/internal/watcher"
)

var (
	watchDaemon      bool
	watchDaemonChild bool
	watchPIDFile     string
	watchLogFile     string
	watchStop        bool
	watchDebounce    time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-run recommendations whenever sales data changes",
		Long: `Watch the sales database and print fresh recommendations each time it is
written, for example by 'menuwise record' from another terminal or a
point-of-sale export job.

Watch modes:
  • Foreground (default): Run in current terminal with Ctrl+C to stop
  • Daemon: Run as a background process logging to a file
  • Stop: Stop a running daemon`,
		Example: `  # Run in foreground (Ctrl+C to stop)
  menuwise watch

  # Run as background daemon
  menuwise watch --daemon

  # Stop running daemon
  menuwise watch --stop`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().BoolVar(&watchDaemon, "daemon", false, "run as background daemon")
	watchCmd.Flags().BoolVar(&watchDaemonChild, "daemon-child", false, "internal flag for daemon child process")
	watchCmd.Flags().StringVar(&watchPIDFile, "pid-file", "", "PID file path (default: ~/.menuwise/watch.pid)")
	watchCmd.Flags().StringVar(&watchLogFile, "log-file", "", "log file path (default: ~/.menuwise/watch.log)")
	watchCmd.Flags().BoolVar(&watchStop, "stop", false, "stop running daemon")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before re-running")

	watchCmd.Flags().MarkHidden("daemon-child")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchPIDFile == "" {
		p, err := getDefaultPIDFile()
		if err != nil {
			return fmt.Errorf("failed to get default PID file path: %w", err)
		}
		watchPIDFile = p
	}
	if watchLogFile == "" {
		p, err := getDefaultLogFile()
		if err != nil {
			return fmt.Errorf("failed to get default log file path: %w", err)
		}
		watchLogFile = p
	}

	if watchStop {
		if err := watcher.StopDaemon(watchPIDFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Watch daemon stopped")
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	if watchDaemon {
		childArgs := []string{"watch", "--daemon-child", "--db", e.dbPath, "--pid-file", watchPIDFile}
		if configPath != "" {
			childArgs = append(childArgs, "--config", configPath)
		}
		pid, err := watcher.StartDaemon(childArgs, watchPIDFile, watchLogFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Watch daemon started (PID %d)\n", pid)
		fmt.Fprintf(cmd.OutOrStdout(), "Logs: %s\n", watchLogFile)
		return nil
	}

	out := cmd.OutOrStdout()
	w, err := watcher.New(e.dbPath, func(ctx context.Context) error {
		res, err := e.svc.Recommendations(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n== %s ==\n", time.Now().Format("2006-01-02 15:04:05"))
		fmt.Fprint(out, output.RenderRecommendations(res))
		return nil
	}, logger.Named(e.log, "watcher"))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.SetDebounce(watchDebounce)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	if watchDaemonChild {
		if err := watcher.WritePID(watchPIDFile, os.Getpid()); err != nil {
			return err
		}
		defer watcher.RemovePID(watchPIDFile)
	} else {
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", e.dbPath)
	}

	// Print the current state once so the first screen is not empty.
	res, err := e.svc.Recommendations(ctx)
	if err != nil {
		return friendlyError(err)
	}
	fmt.Fprint(out, output.RenderRecommendations(res))

	<-ctx.Done()
	return nil
}
