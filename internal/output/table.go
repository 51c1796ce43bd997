// Package output renders menuwise reports for the terminal.
//
// Every Render function returns a plain-text table built from ASCII padding
// and box-drawing rules. Severity labels are coloured only when stdout is a
// terminal and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/analyzer"
	"github.com/blackwell-systems/menuwise/internal/sales"
	"github.com/blackwell-systems/menuwise/internal/store"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

const itemWidth = 18

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

func rule(sb *strings.Builder, width int) {
	sb.WriteString(strings.Repeat("─", width))
	sb.WriteString("\n")
}

// RenderTrendTable renders daily totals, oldest first.
func RenderTrendTable(res analyzer.TrendResult, periodDays int) string {
	var sb strings.Builder
	if len(res.Days) == 0 {
		sb.WriteString(fmt.Sprintf("No sales in the last %d days.\n", periodDays))
		sb.WriteString(skippedFooter(res.Skipped))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-10s  %-9s  %6s  %12s  %6s\n",
		"Date", "Day", "Sold", "Revenue", "Waste"))
	rule(&sb, 51)

	sold := 0
	revenue := decimal.Zero
	for _, d := range res.Days {
		sb.WriteString(fmt.Sprintf("%-10s  %-9s  %6d  %12s  %6d\n",
			formatDate(d.Date),
			d.Date.Weekday().String(),
			d.QuantitySold,
			formatMoney(d.Revenue),
			d.WasteQuantity))
		sold += d.QuantitySold
		revenue = revenue.Add(d.Revenue)
	}

	rule(&sb, 51)
	sb.WriteString(fmt.Sprintf("%d days, %d items sold, %s revenue\n",
		len(res.Days), sold, formatMoney(revenue)))
	sb.WriteString(skippedFooter(res.Skipped))
	return sb.String()
}

// RenderPerformanceTable renders per-item profitability, best first.
func RenderPerformanceTable(res analyzer.PerformanceResult) string {
	var sb strings.Builder
	if len(res.Items) == 0 {
		sb.WriteString("No sales recorded yet.\n")
		sb.WriteString(skippedFooter(res.Skipped))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-*s  %6s  %7s  %11s  %5s  %10s  %7s  %11s\n", itemWidth,
		"Item", "Sold", "Avg/Day", "Revenue", "Waste", "Waste Cost", "Waste %", "Profit"))
	rule(&sb, 94)

	for _, it := range res.Items {
		sb.WriteString(fmt.Sprintf("%-*s  %6d  %7s  %11s  %5d  %10s  %7s  %11s\n", itemWidth,
			truncate(it.MenuItem, itemWidth),
			it.TotalSold,
			it.AvgDailySold.String(),
			formatMoney(it.TotalRevenue),
			it.TotalWaste,
			formatMoney(it.TotalWasteCost),
			formatPercent(it.WastePercent),
			formatMoney(it.Profitability)))
	}

	sb.WriteString(skippedFooter(res.Skipped))
	return sb.String()
}

// RenderPatternTable renders weekday means, Monday first.
func RenderPatternTable(res analyzer.PatternResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-9s  %7s  %8s  %11s  %9s\n",
		"Day", "Records", "Avg Sold", "Avg Revenue", "Avg Waste"))
	rule(&sb, 52)

	for _, d := range res.Days {
		name := d.Day.String()
		if d.Day == time.Saturday || d.Day == time.Sunday {
			name = colorize(colorCyan, fmt.Sprintf("%-9s", name))
		} else {
			name = fmt.Sprintf("%-9s", name)
		}
		sb.WriteString(fmt.Sprintf("%s  %7d  %8s  %11s  %9s\n",
			name,
			d.Records,
			d.AvgSold.String(),
			d.AvgRevenue.String(),
			d.AvgWaste.String()))
	}

	sb.WriteString(skippedFooter(res.Skipped))
	return sb.String()
}

// RenderForecastTable renders the projected daily demand.
func RenderForecastTable(res analyzer.ForecastResult) string {
	var sb strings.Builder
	if len(res.Days) == 0 {
		sb.WriteString("Nothing to forecast.\n")
		sb.WriteString(skippedFooter(res.Skipped))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-10s  %-9s  %6s\n", "Date", "Day", "Demand"))
	rule(&sb, 29)

	for _, d := range res.Days {
		sb.WriteString(fmt.Sprintf("%-10s  %-9s  %6d\n",
			formatDate(d.Date), d.DayOfWeek, d.Demand))
	}

	sb.WriteString("\n")
	if res.BasisDays == 0 {
		sb.WriteString("No sales in the last 30 days; forecast is 0.\n")
	} else {
		sb.WriteString(fmt.Sprintf("Flat forecast from the mean of the last %d recorded days.\n", res.BasisDays))
	}
	sb.WriteString(skippedFooter(res.Skipped))
	return sb.String()
}

// RenderWasteTable renders per-item waste, costliest first.
func RenderWasteTable(res analyzer.WasteResult) string {
	var sb strings.Builder
	if len(res.Items) == 0 {
		sb.WriteString("No waste data recorded yet.\n")
		sb.WriteString(skippedFooter(res.Skipped))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%-*s  %5s  %10s  %6s  %7s\n", itemWidth,
		"Item", "Waste", "Waste Cost", "Sold", "Waste %"))
	rule(&sb, 54)

	for _, it := range res.Items {
		pct := formatPercent(it.WastePercent)
		if it.WastePercent.Above(analyzer.HighWastePercent) {
			pct = colorize(colorRed, fmt.Sprintf("%7s", pct))
		} else {
			pct = fmt.Sprintf("%7s", pct)
		}
		sb.WriteString(fmt.Sprintf("%-*s  %5d  %10s  %6d  %s\n", itemWidth,
			truncate(it.MenuItem, itemWidth),
			it.WasteQuantity,
			formatMoney(it.WasteCost),
			it.QuantitySold,
			pct))
	}

	sb.WriteString(skippedFooter(res.Skipped))
	return sb.String()
}

// RenderRecommendations renders findings in rule-engine order.
func RenderRecommendations(res analyzer.RecommendationResult) string {
	var sb strings.Builder
	if len(res.Items) == 0 {
		sb.WriteString("No recommendations. Waste and profitability are within limits.\n")
		sb.WriteString(skippedFooter(res.Skipped))
		return sb.String()
	}

	for i, r := range res.Items {
		tag := colorize(severityColor(r.Severity), "["+strings.ToUpper(string(r.Severity))+"]")
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, tag, r.Message))
		sb.WriteString(fmt.Sprintf("   Action: %s\n", r.Action))
	}

	sb.WriteString(skippedFooter(res.Skipped))
	return sb.String()
}

func severityColor(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityCritical:
		return colorRed
	case analyzer.SeverityWarning:
		return colorYellow
	default:
		return colorCyan
	}
}

// RenderSummary renders headline figures for a period.
func RenderSummary(s analyzer.Summary) string {
	var sb strings.Builder

	period := "all records"
	switch {
	case !s.From.IsZero() && !s.To.IsZero():
		period = formatDate(s.From) + " to " + formatDate(s.To)
	case !s.From.IsZero():
		period = "since " + formatDate(s.From)
	case !s.To.IsZero():
		period = "until " + formatDate(s.To)
	}

	sb.WriteString(fmt.Sprintf("%-17s %s\n", "Period:", period))
	sb.WriteString(fmt.Sprintf("%-17s %d\n", "Records:", s.Records))
	sb.WriteString(fmt.Sprintf("%-17s %d\n", "Items sold:", s.ItemsSold))
	sb.WriteString(fmt.Sprintf("%-17s %s\n", "Revenue:", formatMoney(s.TotalRevenue)))
	sb.WriteString(fmt.Sprintf("%-17s %s\n", "Waste cost:", formatMoney(s.WasteCost)))
	sb.WriteString(fmt.Sprintf("%-17s %s\n", "Avg daily sales:", s.AvgDailySales.String()))
	sb.WriteString(fmt.Sprintf("%-17s %s\n", "Waste/revenue:", formatPercent(s.WastePercent)))
	sb.WriteString(skippedFooter(s.Skipped))
	return sb.String()
}

// RenderCatalogTable renders menu items in the order given.
func RenderCatalogTable(items []*store.MenuItem) string {
	if len(items) == 0 {
		return "Catalog is empty. Add items with 'menuwise catalog set'.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-10s  %9s  %s\n", itemWidth, "Item", "Category", "Price", "Status"))
	rule(&sb, 50)

	for _, it := range items {
		status := colorize(colorGreen, "active")
		if !it.Active {
			status = colorize(colorGray, "inactive")
		}
		sb.WriteString(fmt.Sprintf("%-*s  %-10s  %9s  %s\n", itemWidth,
			truncate(it.Name, itemWidth),
			truncate(it.Category, 10),
			formatMoney(it.Price),
			status))
	}
	return sb.String()
}

// RenderStatus renders a short description of the store.
func RenderStatus(stats *store.Stats, dbPath string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "Database:", dbPath))
	sb.WriteString(fmt.Sprintf("%-12s %d active\n", "Menu items:", stats.MenuItems))
	sb.WriteString(fmt.Sprintf("%-12s %d\n", "Records:", stats.Records))
	if stats.Records == 0 {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", "Coverage:", "none (run 'menuwise seed' or 'menuwise record')"))
	} else {
		days := int(stats.LastDate.Sub(stats.FirstDate).Hours()/24) + 1
		sb.WriteString(fmt.Sprintf("%-12s %s to %s (%d days)\n", "Coverage:",
			formatDate(stats.FirstDate), formatDate(stats.LastDate), days))
	}
	return sb.String()
}

func skippedFooter(skipped int) string {
	if skipped <= 0 {
		return ""
	}
	noun := "records"
	if skipped == 1 {
		noun = "record"
	}
	return colorize(colorYellow, fmt.Sprintf("\nNote: %d malformed %s skipped.", skipped, noun)) + "\n"
}

func formatDate(t time.Time) string {
	return t.Format(sales.DateLayout)
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatPercent(m analyzer.Measure) string {
	if !m.IsDefined() {
		return m.String()
	}
	return m.String() + "%"
}

// truncate shortens s to maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
