package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/output"
)

var (
	seedDays  int
	seedValue int64

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Generate deterministic sample sales data",
		Long: `Fill the database with generated sales for every active catalog item,
covering the last --days days up to today. The same --seed always produces
the same data. Existing records for the same item and date are replaced.`,
		Example: `  menuwise seed
  menuwise seed --days 30 --seed 7`,
		Args: cobra.NoArgs,
		RunE: withEnv(runSeed),
	}
)

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 90, "number of days of history to generate")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 42, "random seed")
}

func runSeed(cmd *cobra.Command, e *env, args []string) error {
	if seedDays < 0 {
		return fmt.Errorf("--days must not be negative, got %d", seedDays)
	}

	progress := output.NewProgress(seedDays+1, "Generating sample days")
	progress.SetWriter(cmd.ErrOrStderr())

	n, err := e.store.SeedSample(cmd.Context(), e.clock.Now(), seedDays, seedValue, progress.Increment)
	if err != nil {
		return err
	}
	progress.Finish()

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d records into %s\n", n, e.dbPath)
	return nil
}
