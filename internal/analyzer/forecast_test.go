package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

func TestForecastDemand_MeanOfLastSevenDays(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) // Friday
	var ledger sales.Ledger
	for i, qty := range []int{10, 20, 30, 40, 50, 60, 70} {
		ledger = append(ledger, record(now.AddDate(0, 0, i-6), "Juice", qty, "60", 0))
	}

	res := ForecastDemand(ledger, now, 7)
	require.Len(t, res.Days, 7)
	assert.Equal(t, 7, res.BasisDays)

	for i, d := range res.Days {
		want := time.Date(2024, 3, 16+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, d.Date)
		assert.Equal(t, 40, d.Demand)
		assert.Equal(t, want.Weekday().String(), d.DayOfWeek)
	}
	assert.Equal(t, "Saturday", res.Days[0].DayOfWeek)
}

func TestForecastDemand_SumsItemsPerDay(t *testing.T) {
	now := day(6)
	ledger := sales.Ledger{
		record(day(5), "Juice", 10, "60", 0),
		record(day(5), "Samosa", 15, "40", 0),
		record(day(6), "Juice", 30, "60", 0),
	}

	res := ForecastDemand(ledger, now, 3)
	require.Len(t, res.Days, 3)
	assert.Equal(t, 27, res.Days[0].Demand) // (25 + 30) / 2, truncated
	assert.Equal(t, 2, res.BasisDays)
}

func TestForecastDemand_IgnoresOlderDays(t *testing.T) {
	now := day(40)
	ledger := sales.Ledger{
		record(day(0), "Juice", 9999, "60", 0), // outside the 30-day window
		record(day(31), "Juice", 500, "60", 0), // inside the window, older than the last 7 totals
	}
	for i := 33; i <= 39; i++ {
		ledger = append(ledger, record(day(i), "Juice", 14, "60", 0))
	}

	res := ForecastDemand(ledger, now, 1)
	require.Len(t, res.Days, 1)
	assert.Equal(t, 14, res.Days[0].Demand)
}

func TestForecastDemand_NoHistory(t *testing.T) {
	res := ForecastDemand(nil, day(0), 5)
	require.Len(t, res.Days, 5)
	for _, d := range res.Days {
		assert.Zero(t, d.Demand)
	}
	assert.Zero(t, res.BasisDays)
}

func TestForecastDemand_HorizonLength(t *testing.T) {
	ledger := canteenLedger()
	for _, horizon := range []int{0, 1, 7, 14} {
		res := ForecastDemand(ledger, day(13), horizon)
		assert.Len(t, res.Days, horizon)
	}
	assert.Empty(t, ForecastDemand(ledger, day(13), -3).Days)
}

func TestForecastDemand_OneBasisDayPerCalendarDate(t *testing.T) {
	midnight := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	ledger := sales.Ledger{
		record(midnight, "Juice", 5, "60", 0),
		record(midnight.Add(10*time.Hour), "Juice", 5, "60", 0),
		record(time.Date(2024, 3, 4, 0, 0, 0, 0, time.FixedZone("EAT0", 0)), "Juice", 5, "60", 0),
	}

	res := ForecastDemand(ledger, day(1), 1)

	assert.Equal(t, 1, res.BasisDays)
	require.Len(t, res.Days, 1)
	assert.Equal(t, 15, res.Days[0].Demand)
}

func TestForecastDemand_IgnoresFutureDatedRecords(t *testing.T) {
	now := day(6)
	ledger := sales.Ledger{
		record(day(5), "Juice", 20, "60", 0),
		record(day(6), "Juice", 40, "60", 0),
		record(day(7), "Juice", 9000, "60", 0), // tomorrow
		record(day(20), "Juice", 9000, "60", 0),
	}

	res := ForecastDemand(ledger, now, 2)

	assert.Equal(t, 2, res.BasisDays)
	require.Len(t, res.Days, 2)
	assert.Equal(t, 30, res.Days[0].Demand)
}
