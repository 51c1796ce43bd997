package analyzer

import (
	"time"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// ForecastDemand projects a flat daily demand for the horizonDays days after
// now. The level is the mean of the most recent ForecastBasisDays daily
// totals within the trailing ForecastWindowDays up to and including today,
// truncated to a whole unit. Records dated after today are ignored. With no
// history the forecast is 0.
func ForecastDemand(ledger sales.Ledger, now time.Time, horizonDays int) ForecastResult {
	records, skipped := clean(ledger)
	today := sales.Day(now)

	totals := dailyTotals(records, today.AddDate(0, 0, -ForecastWindowDays), today)
	if len(totals) > ForecastBasisDays {
		totals = totals[len(totals)-ForecastBasisDays:]
	}

	level := 0
	if len(totals) > 0 {
		sum := 0
		for _, d := range totals {
			sum += d.QuantitySold
		}
		level = sum / len(totals)
	}

	if horizonDays < 0 {
		horizonDays = 0
	}
	days := make([]ForecastDay, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		date := today.AddDate(0, 0, i)
		days = append(days, ForecastDay{
			Date:      date,
			Demand:    level,
			DayOfWeek: date.Weekday().String(),
		})
	}

	return ForecastResult{
		Days:      days,
		BasisDays: len(totals),
		Skipped:   skipped,
	}
}
