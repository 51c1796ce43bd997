package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/menuwise/internal/config"
	"github.com/blackwell-systems/menuwise/internal/sales"
)

var (
	recordDate  string
	recordItem  string
	recordSold  int
	recordWaste int

	recordCmd = &cobra.Command{
		Use:   "record",
		Short: "Record a day's sales and waste for one menu item",
		Long: `Record how many portions of a menu item were sold and wasted on a date.

The unit price is taken from the catalog at the time of recording. Recording
the same item and date again replaces the earlier entry.

Short names can be mapped to catalog items in ~/.config/menuwise/aliases:

  chapati = Chapati & Beans
  tea     = Tea & Mandazi`,
		Example: `  menuwise record --item "Rice & Stew" --sold 55 --waste 4
  menuwise record --date 2024-03-15 --item chapati --sold 42`,
		Args: cobra.NoArgs,
		RunE: withEnv(runRecord),
	}
)

func init() {
	recordCmd.Flags().StringVar(&recordDate, "date", "", "sale date (YYYY-MM-DD, default: today)")
	recordCmd.Flags().StringVar(&recordItem, "item", "", "menu item name or alias")
	recordCmd.Flags().IntVar(&recordSold, "sold", 0, "portions sold")
	recordCmd.Flags().IntVar(&recordWaste, "waste", 0, "portions wasted")
	recordCmd.MarkFlagRequired("item")
}

func runRecord(cmd *cobra.Command, e *env, args []string) error {
	if recordSold < 0 || recordWaste < 0 {
		return fmt.Errorf("--sold and --waste must not be negative")
	}

	date := sales.Day(e.clock.Now())
	if recordDate != "" {
		d, err := parseDateFlag("date", recordDate)
		if err != nil {
			return err
		}
		date = d
	}

	item := recordItem
	if dir, err := config.Dir(); err == nil {
		aliases, err := config.LoadAliases(dir)
		if err != nil {
			e.log.Warn("failed to read aliases", zap.Error(err))
		}
		item = aliases.Resolve(item)
	}

	rec, err := e.store.AddSale(cmd.Context(), date, item, recordSold, recordWaste)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s on %s: %d sold at %s (revenue %s), %d wasted (cost %s)\n",
		rec.MenuItem,
		rec.Date.Format(sales.DateLayout),
		rec.QuantitySold,
		rec.UnitPrice.StringFixed(2),
		rec.Revenue.StringFixed(2),
		rec.WasteQuantity,
		rec.WasteCost.StringFixed(2))
	return nil
}
