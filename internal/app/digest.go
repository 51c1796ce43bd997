package app

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/logger"
	"github.com/blackwell-systems/menuwise/internal/output"
	"github.com/blackwell-systems/menuwise/internal/scheduler"
)

var (
	digestOnce bool

	digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Print recommendations and a forecast on a schedule",
		Long: `Run the daily digest: recommendations followed by the demand forecast.

The schedule is a cron expression from digest.schedule (default "0 20 * * *",
every evening at 20:00) in digest.timezone. Use --once to print a single
digest and exit.`,
		Example: `  menuwise digest --once
  MENUWISE_DIGEST_SCHEDULE="30 6 * * 1-5" menuwise digest`,
		Args: cobra.NoArgs,
		RunE: withEnv(runDigest),
	}
)

func init() {
	digestCmd.Flags().BoolVar(&digestOnce, "once", false, "print one digest and exit")
}

func digestSink(w io.Writer) scheduler.Sink {
	return func(d scheduler.Digest) error {
		fmt.Fprintf(w, "Digest for %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04"))
		fmt.Fprint(w, output.RenderRecommendations(d.Recommendations))
		fmt.Fprintln(w)
		fmt.Fprint(w, output.RenderForecastTable(d.Forecast))
		return nil
	}
}

func runDigest(cmd *cobra.Command, e *env, args []string) error {
	s, err := scheduler.New(e.cfg.Digest, e.svc, digestSink(cmd.OutOrStdout()), logger.Named(e.log, "scheduler"))
	if err != nil {
		return err
	}

	if digestOnce {
		_, err := s.RunOnce(cmd.Context())
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.Start()
	fmt.Fprintf(cmd.OutOrStdout(), "Next digest at %s (Ctrl+C to stop)\n", s.Next().Format("2006-01-02 15:04 MST"))
	<-ctx.Done()
	s.Stop()
	return nil
}

