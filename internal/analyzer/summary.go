package analyzer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// Summarize returns headline totals for records dated within [from, to].
// A zero from or to leaves that side of the range open.
func Summarize(ledger sales.Ledger, from, to time.Time) Summary {
	records, skipped := clean(ledger)

	var lo, hi time.Time
	if !from.IsZero() {
		lo = sales.Day(from)
	}
	if !to.IsZero() {
		hi = sales.Day(to)
	}

	s := Summary{
		From:         lo,
		To:           hi,
		TotalRevenue: decimal.Zero,
		WasteCost:    decimal.Zero,
		Skipped:      skipped,
	}

	inRange := make([]sales.Record, 0, len(records))
	for _, rec := range records {
		if !lo.IsZero() && rec.Date.Before(lo) {
			continue
		}
		if !hi.IsZero() && rec.Date.After(hi) {
			continue
		}
		inRange = append(inRange, rec)
		s.Records++
		s.ItemsSold += rec.QuantitySold
		s.TotalRevenue = s.TotalRevenue.Add(rec.Revenue)
		s.WasteCost = s.WasteCost.Add(rec.WasteCost)
	}

	days := dailyTotals(inRange, time.Time{}, time.Time{})
	s.AvgDailySales = Mean(decimal.NewFromInt(int64(s.ItemsSold)), len(days))
	s.WastePercent = Percent(s.WasteCost, s.TotalRevenue)

	return s
}
