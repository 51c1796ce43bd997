package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// DailyPatterns returns mean sales, revenue and waste per weekday. The result
// always has seven rows, Monday through Sunday; a weekday with no records
// keeps undefined means rather than zeros.
func DailyPatterns(ledger sales.Ledger) PatternResult {
	records, skipped := clean(ledger)

	type acc struct {
		count   int
		sold    int64
		revenue decimal.Decimal
		waste   int64
	}
	var byDay [7]acc // indexed by time.Weekday (Sunday == 0)
	for i := range byDay {
		byDay[i].revenue = decimal.Zero
	}

	for _, rec := range records {
		a := &byDay[rec.DayOfWeek()]
		a.count++
		a.sold += int64(rec.QuantitySold)
		a.revenue = a.revenue.Add(rec.Revenue)
		a.waste += int64(rec.WasteQuantity)
	}

	days := make([]DayPattern, 0, len(weekOrder))
	for _, wd := range weekOrder {
		a := byDay[wd]
		days = append(days, DayPattern{
			Day:        wd,
			Records:    a.count,
			AvgSold:    Mean(decimal.NewFromInt(a.sold), a.count),
			AvgRevenue: Mean(a.revenue, a.count),
			AvgWaste:   Mean(decimal.NewFromInt(a.waste), a.count),
		})
	}

	return PatternResult{Days: days, Skipped: skipped}
}
