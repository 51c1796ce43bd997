package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

func TestMenuPerformance_Totals(t *testing.T) {
	ledger := sales.Ledger{
		record(day(0), "Rice & Stew", 40, "120", 4),
		record(day(1), "Rice & Stew", 20, "120", 2),
	}

	res := MenuPerformance(ledger)
	require.Len(t, res.Items, 1)
	row := res.Items[0]

	assert.Equal(t, "Rice & Stew", row.MenuItem)
	assert.Equal(t, 60, row.TotalSold)
	assert.Equal(t, "30.0", row.AvgDailySold.String())
	assert.True(t, row.TotalRevenue.Equal(dec("7200")))
	assert.Equal(t, 6, row.TotalWaste)
	assert.True(t, row.TotalWasteCost.Equal(dec("216")), "waste cost = %s", row.TotalWasteCost)
	assert.Equal(t, "10.0", row.WastePercent.String())
	assert.True(t, row.Profitability.Equal(dec("6984")), "profitability = %s", row.Profitability)
}

func TestMenuPerformance_SortContract(t *testing.T) {
	ledger := sales.Ledger{
		record(day(0), "Samosa", 10, "40", 0),  // 400
		record(day(0), "Juice", 10, "60", 0),   // 600
		record(day(0), "Fruit", 5, "80", 0),    // 400, tie with Samosa
		record(day(0), "Chips", 10, "150", 10), // 1500 - 450 = 1050
	}

	res := MenuPerformance(ledger)
	require.Len(t, res.Items, 4)

	got := make([]string, len(res.Items))
	for i, row := range res.Items {
		got[i] = row.MenuItem
	}
	assert.Equal(t, []string{"Chips", "Juice", "Fruit", "Samosa"}, got)

	for i := 1; i < len(res.Items); i++ {
		prev, cur := res.Items[i-1], res.Items[i]
		if prev.Profitability.Equal(cur.Profitability) {
			assert.Less(t, prev.MenuItem, cur.MenuItem)
		} else {
			assert.True(t, prev.Profitability.GreaterThan(cur.Profitability))
		}
	}
}

func TestMenuPerformance_UndefinedWastePercent(t *testing.T) {
	ledger := sales.Ledger{record(day(0), "Fruit Salad", 0, "80", 6)}

	res := MenuPerformance(ledger)
	require.Len(t, res.Items, 1)
	assert.False(t, res.Items[0].WastePercent.IsDefined())
	assert.True(t, res.Items[0].Profitability.Equal(dec("-144")))
}

func TestMenuPerformance_Idempotent(t *testing.T) {
	ledger := canteenLedger()
	assert.Equal(t, MenuPerformance(ledger), MenuPerformance(ledger))
}

func TestMenuPerformance_EmptyLedger(t *testing.T) {
	res := MenuPerformance(sales.Ledger{})
	assert.Empty(t, res.Items)
}
