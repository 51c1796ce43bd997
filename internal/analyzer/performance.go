package analyzer

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// MenuPerformance ranks menu items by profitability (revenue minus waste
// cost), highest first. Ties are broken by item name.
func MenuPerformance(ledger sales.Ledger) PerformanceResult {
	records, skipped := clean(ledger)
	return PerformanceResult{
		Items:   performanceRows(records),
		Skipped: skipped,
	}
}

func performanceRows(records []sales.Record) []ItemPerformance {
	groups := groupByItem(records)
	rows := make([]ItemPerformance, 0, len(groups))

	for _, g := range groups {
		rows = append(rows, ItemPerformance{
			MenuItem:       g.item,
			TotalSold:      g.sold,
			AvgDailySold:   Mean(decimal.NewFromInt(int64(g.sold)), g.records),
			TotalRevenue:   g.revenue,
			TotalWaste:     g.waste,
			TotalWasteCost: g.wasteCost,
			WastePercent:   Percent(decimal.NewFromInt(int64(g.waste)), decimal.NewFromInt(int64(g.sold))),
			Profitability:  g.revenue.Sub(g.wasteCost),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Profitability.Cmp(rows[j].Profitability); c != 0 {
			return c > 0
		}
		return rows[i].MenuItem < rows[j].MenuItem
	})

	return rows
}
