package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// GenerateRecommendations evaluates the waste and profitability rules against
// one ledger snapshot. Output order is fixed: high-waste warnings in
// waste-cost order, then at most LowProfitLimit low-profitability notes, then
// the overall waste alert if it fires.
func GenerateRecommendations(ledger sales.Ledger) RecommendationResult {
	records, skipped := clean(ledger)

	recs := make([]Recommendation, 0)
	recs = append(recs, highWasteItems(wasteRows(records))...)
	recs = append(recs, lowProfitItems(performanceRows(records))...)
	if rec, ok := overallWaste(records); ok {
		recs = append(recs, rec)
	}

	return RecommendationResult{Items: recs, Skipped: skipped}
}

// highWasteItems warns about every item whose waste percentage is defined and
// above HighWastePercent.
func highWasteItems(rows []ItemWaste) []Recommendation {
	var recs []Recommendation
	for _, row := range rows {
		if !row.WastePercent.Above(HighWastePercent) {
			continue
		}
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("High waste detected for %s: %s%%", row.MenuItem, row.WastePercent),
			Action:   fmt.Sprintf("Consider reducing portions or improving demand forecasting for %s", row.MenuItem),
		})
	}
	return recs
}

// lowProfitItems reports the lowest-profitability items that fall strictly
// below the LowProfitQuantile of all items, worst first.
func lowProfitItems(rows []ItemPerformance) []Recommendation {
	if len(rows) == 0 {
		return nil
	}

	values := make([]decimal.Decimal, len(rows))
	for i, row := range rows {
		values[i] = row.Profitability
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].LessThan(values[j])
	})
	threshold := quantile(values, LowProfitQuantile)

	var low []ItemPerformance
	for _, row := range rows {
		if row.Profitability.LessThan(threshold) {
			low = append(low, row)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		if c := low[i].Profitability.Cmp(low[j].Profitability); c != 0 {
			return c < 0
		}
		return low[i].MenuItem < low[j].MenuItem
	})
	if len(low) > LowProfitLimit {
		low = low[:LowProfitLimit]
	}

	recs := make([]Recommendation, 0, len(low))
	for _, row := range low {
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Low profitability for %s", row.MenuItem),
			Action:   fmt.Sprintf("Review pricing or consider replacing %s on menu", row.MenuItem),
		})
	}
	return recs
}

// overallWaste compares total waste cost with total revenue across every
// record. It does not fire when revenue is zero.
func overallWaste(records []sales.Record) (Recommendation, bool) {
	revenue := decimal.Zero
	wasteCost := decimal.Zero
	for _, rec := range records {
		revenue = revenue.Add(rec.Revenue)
		wasteCost = wasteCost.Add(rec.WasteCost)
	}

	pct := Percent(wasteCost, revenue)
	if !pct.Above(GlobalWastePercent) {
		return Recommendation{}, false
	}

	return Recommendation{
		Severity: SeverityCritical,
		Message:  fmt.Sprintf("High overall waste: %s%% of revenue", pct),
		Action:   "Implement pre-ordering system and improve inventory management",
	}, true
}

// quantile interpolates linearly between the order statistics of sorted,
// which must be non-empty and ascending.
func quantile(sorted []decimal.Decimal, q float64) decimal.Decimal {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := decimal.NewFromFloat(pos - float64(lo))
	return sorted[lo].Add(sorted[hi].Sub(sorted[lo]).Mul(frac))
}
