package analyzer

import (
	"time"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// SalesTrend returns daily totals for records dated on or after
// Day(now) - periodDays, ascending by date. Records dated after now are
// included.
func SalesTrend(ledger sales.Ledger, now time.Time, periodDays int) TrendResult {
	records, skipped := clean(ledger)
	since := sales.Day(now).AddDate(0, 0, -periodDays)

	return TrendResult{
		Days:    dailyTotals(records, since, time.Time{}),
		Skipped: skipped,
	}
}
