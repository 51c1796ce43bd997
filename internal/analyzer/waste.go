package analyzer

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// WasteAnalysis sums waste per menu item, highest waste cost first. Ties are
// broken by item name.
func WasteAnalysis(ledger sales.Ledger) WasteResult {
	records, skipped := clean(ledger)
	return WasteResult{
		Items:   wasteRows(records),
		Skipped: skipped,
	}
}

func wasteRows(records []sales.Record) []ItemWaste {
	groups := groupByItem(records)
	rows := make([]ItemWaste, 0, len(groups))

	for _, g := range groups {
		rows = append(rows, ItemWaste{
			MenuItem:      g.item,
			WasteQuantity: g.waste,
			WasteCost:     g.wasteCost,
			QuantitySold:  g.sold,
			WastePercent:  Percent(decimal.NewFromInt(int64(g.waste)), decimal.NewFromInt(int64(g.sold))),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].WasteCost.Cmp(rows[j].WasteCost); c != 0 {
			return c > 0
		}
		return rows[i].MenuItem < rows[j].MenuItem
	})

	return rows
}
