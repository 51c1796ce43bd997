// Package analyzer derives trend, performance, pattern, waste, forecast and
// recommendation tables from a sales ledger snapshot.
//
// Every function here is a pure computation: it never touches storage, never
// reads the wall clock and never mutates its input. Records that fail
// validation are skipped and counted in the result's Skipped field.
package analyzer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// Rule thresholds for GenerateRecommendations.
const (
	// HighWastePercent flags an item whose wasted units exceed this share of
	// its sold units.
	HighWastePercent = 15.0

	// LowProfitQuantile is the profitability quantile below which an item is
	// considered a low performer.
	LowProfitQuantile = 0.25

	// LowProfitLimit caps how many low performers are reported per run.
	LowProfitLimit = 2

	// GlobalWastePercent flags the whole ledger when total waste cost exceeds
	// this share of total revenue.
	GlobalWastePercent = 15.0
)

// Forecast window sizes.
const (
	ForecastWindowDays = 30
	ForecastBasisDays  = 7
)

// weekOrder lists weekdays Monday first, the order used by every report.
var weekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// clean returns the records that satisfy the ledger invariants, each dated
// at UTC midnight of its calendar date, and the number of records it had to
// drop.
func clean(ledger sales.Ledger) ([]sales.Record, int) {
	records := make([]sales.Record, 0, len(ledger))
	skipped := 0
	for _, rec := range ledger {
		if err := rec.Validate(); err != nil {
			skipped++
			continue
		}
		rec.Date = sales.Day(rec.Date)
		records = append(records, rec)
	}
	return records, skipped
}

// itemTotals accumulates the per-item sums shared by the performance and
// waste tables.
type itemTotals struct {
	item      string
	records   int
	sold      int
	revenue   decimal.Decimal
	waste     int
	wasteCost decimal.Decimal
}

// groupByItem sums records per menu item in a single pass. The returned slice
// is in first-seen order; callers sort it.
func groupByItem(records []sales.Record) []*itemTotals {
	index := make(map[string]*itemTotals)
	order := make([]*itemTotals, 0)

	for _, rec := range records {
		t, ok := index[rec.MenuItem]
		if !ok {
			t = &itemTotals{item: rec.MenuItem, revenue: decimal.Zero, wasteCost: decimal.Zero}
			index[rec.MenuItem] = t
			order = append(order, t)
		}
		t.records++
		t.sold += rec.QuantitySold
		t.revenue = t.revenue.Add(rec.Revenue)
		t.waste += rec.WasteQuantity
		t.wasteCost = t.wasteCost.Add(rec.WasteCost)
	}

	return order
}

// dailyTotals sums records per calendar date within [since, until],
// ascending. A zero until leaves the range open-ended.
func dailyTotals(records []sales.Record, since, until time.Time) []DailyTotal {
	index := make(map[time.Time]int)
	days := make([]DailyTotal, 0)

	for _, rec := range records {
		date := sales.Day(rec.Date)
		if date.Before(since) || (!until.IsZero() && date.After(until)) {
			continue
		}
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, DailyTotal{Date: date, Revenue: decimal.Zero})
		}
		days[i].QuantitySold += rec.QuantitySold
		days[i].Revenue = days[i].Revenue.Add(rec.Revenue)
		days[i].WasteQuantity += rec.WasteQuantity
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}
