package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/output"
	"github.com/blackwell-systems/menuwise/internal/report"
)

var (
	trendDays    int
	forecastDays int
	summaryFrom  string
	summaryTo    string

	trendsCmd = &cobra.Command{
		Use:   "trends",
		Short: "Daily sales totals over a recent window",
		Long: `Show total quantity sold, revenue and waste for each day in the window,
oldest first. The window starts --days days before today and includes today.`,
		Example: `  menuwise trends
  menuwise trends --days 7`,
		Args: cobra.NoArgs,
		RunE: withEnv(runTrends),
	}

	menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Per-item performance ranked by profitability",
		Long: `Rank every menu item by profitability (revenue minus waste cost).

Waste % is waste quantity over quantity sold and shows n/a for items that
never sold.`,
		Args: cobra.NoArgs,
		RunE: withEnv(runMenu),
	}

	patternsCmd = &cobra.Command{
		Use:   "patterns",
		Short: "Average sales by day of week",
		Long: `Show mean quantity sold, revenue and waste per record for each weekday,
Monday first. Days with no records show n/a.`,
		Args: cobra.NoArgs,
		RunE: withEnv(runPatterns),
	}

	forecastCmd = &cobra.Command{
		Use:   "forecast",
		Short: "Flat demand forecast for the coming days",
		Long: `Forecast total daily demand from the mean of the most recent 7 daily
totals within the last 30 days. Every forecast day carries the same value.`,
		Example: `  menuwise forecast
  menuwise forecast --days 14`,
		Args: cobra.NoArgs,
		RunE: withEnv(runForecast),
	}

	wasteCmd = &cobra.Command{
		Use:   "waste",
		Short: "Per-item waste ranked by waste cost",
		Args:  cobra.NoArgs,
		RunE:  withEnv(runWaste),
	}

	recommendCmd = &cobra.Command{
		Use:   "recommend",
		Short: "Prioritized recommendations",
		Long: `Evaluate the recommendation rules against the full ledger:

  warning   an item wastes more than 15% of what it sells
  info      one of the two least profitable items below the lower quartile
  critical  total waste cost exceeds 15% of total revenue`,
		Args: cobra.NoArgs,
		RunE: withEnv(runRecommend),
	}

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Headline figures for a date range",
		Example: `  menuwise summary
  menuwise summary --from 2024-03-01 --to 2024-03-31`,
		Args: cobra.NoArgs,
		RunE: withEnv(runSummary),
	}
)

func init() {
	trendsCmd.Flags().IntVar(&trendDays, "days", report.DefaultTrendDays, "number of days to look back")
	forecastCmd.Flags().IntVar(&forecastDays, "days", report.DefaultForecastDays, "number of days to forecast")
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "first date to include (YYYY-MM-DD)")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "last date to include (YYYY-MM-DD)")
}

func runTrends(cmd *cobra.Command, e *env, args []string) error {
	if trendDays <= 0 {
		return fmt.Errorf("--days must be positive, got %d", trendDays)
	}
	res, err := e.svc.SalesTrends(cmd.Context(), trendDays)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderTrendTable(res, trendDays))
	return nil
}

func runMenu(cmd *cobra.Command, e *env, args []string) error {
	res, err := e.svc.MenuPerformance(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderPerformanceTable(res))
	return nil
}

func runPatterns(cmd *cobra.Command, e *env, args []string) error {
	res, err := e.svc.DailyPatterns(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderPatternTable(res))
	return nil
}

func runForecast(cmd *cobra.Command, e *env, args []string) error {
	if forecastDays <= 0 {
		return fmt.Errorf("--days must be positive, got %d", forecastDays)
	}
	res, err := e.svc.ForecastDemand(cmd.Context(), forecastDays)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderForecastTable(res))
	return nil
}

func runWaste(cmd *cobra.Command, e *env, args []string) error {
	res, err := e.svc.WasteAnalysis(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderWasteTable(res))
	return nil
}

func runRecommend(cmd *cobra.Command, e *env, args []string) error {
	res, err := e.svc.Recommendations(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderRecommendations(res))
	return nil
}

func runSummary(cmd *cobra.Command, e *env, args []string) error {
	from, err := parseDateFlag("from", summaryFrom)
	if err != nil {
		return err
	}
	to, err := parseDateFlag("to", summaryTo)
	if err != nil {
		return err
	}

	res, err := e.svc.Summary(cmd.Context(), from, to)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderSummary(res))
	return nil
}
