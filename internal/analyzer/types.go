package analyzer

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotal is the sum of all items sold on one date.
type DailyTotal struct {
	Date          time.Time
	QuantitySold  int
	Revenue       decimal.Decimal
	WasteQuantity int
}

// TrendResult is the output of SalesTrend.
type TrendResult struct {
	Days    []DailyTotal // ascending by date
	Skipped int
}

// ItemPerformance summarizes one menu item over the ledger.
type ItemPerformance struct {
	MenuItem       string
	TotalSold      int
	AvgDailySold   Measure // mean quantity per recorded day
	TotalRevenue   decimal.Decimal
	TotalWaste     int
	TotalWasteCost decimal.Decimal
	WastePercent   Measure // undefined when TotalSold is 0
	Profitability  decimal.Decimal
}

// PerformanceResult is the output of MenuPerformance.
type PerformanceResult struct {
	Items   []ItemPerformance // profitability desc, item asc
	Skipped int
}

// DayPattern holds per-weekday means. Records is 0 and every Measure is
// undefined for a weekday absent from the ledger.
type DayPattern struct {
	Day        time.Weekday
	Records    int
	AvgSold    Measure
	AvgRevenue Measure
	AvgWaste   Measure
}

// PatternResult is the output of DailyPatterns.
type PatternResult struct {
	Days    []DayPattern // always 7 rows, Monday..Sunday
	Skipped int
}

// ItemWaste summarizes waste for one menu item.
type ItemWaste struct {
	MenuItem      string
	WasteQuantity int
	WasteCost     decimal.Decimal
	QuantitySold  int
	WastePercent  Measure
}

// WasteResult is the output of WasteAnalysis.
type WasteResult struct {
	Items   []ItemWaste // waste cost desc, item asc
	Skipped int
}

// ForecastDay is one day of projected demand.
type ForecastDay struct {
	Date      time.Time
	Demand    int
	DayOfWeek string
}

// ForecastResult is the output of ForecastDemand.
type ForecastResult struct {
	Days      []ForecastDay
	BasisDays int // number of daily totals averaged
	Skipped   int
}

// Severity ranks a recommendation.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Recommendation is an actionable finding. It has no identity and is rebuilt
// on every call.
type Recommendation struct {
	Severity Severity
	Message  string
	Action   string
}

// RecommendationResult is the output of GenerateRecommendations.
type RecommendationResult struct {
	Items   []Recommendation
	Skipped int
}

// Summary holds headline figures for a date range.
type Summary struct {
	From          time.Time // zero when unbounded
	To            time.Time // zero when unbounded
	Records       int
	ItemsSold     int
	TotalRevenue  decimal.Decimal
	WasteCost     decimal.Decimal
	AvgDailySales Measure // mean of daily quantity totals
	WastePercent  Measure // waste cost as a share of revenue
	Skipped       int
}
