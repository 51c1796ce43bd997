package output

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/analyzer"
	"github.com/blackwell-systems/menuwise/internal/store"
)

func noColor(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
}

func date(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestIsColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if IsColorEnabled() {
		t.Error("IsColorEnabled() = true with NO_COLOR set")
	}
}

func TestRenderTrendTable(t *testing.T) {
	noColor(t)
	res := analyzer.TrendResult{
		Days: []analyzer.DailyTotal{
			{Date: date(4), QuantitySold: 120, Revenue: decimal.NewFromInt(9600), WasteQuantity: 6},
			{Date: date(5), QuantitySold: 80, Revenue: decimal.NewFromInt(6400), WasteQuantity: 2},
		},
	}

	got := RenderTrendTable(res, 30)

	for _, want := range []string{"Date", "Revenue", "2024-03-04", "Monday", "9600.00", "2 days, 200 items sold, 16000.00 revenue"} {
		if !strings.Contains(got, want) {
			t.Errorf("trend table missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "skipped") {
		t.Errorf("no skipped footer expected:\n%s", got)
	}
}

func TestRenderTrendTable_Empty(t *testing.T) {
	noColor(t)
	got := RenderTrendTable(analyzer.TrendResult{Skipped: 2}, 14)

	if !strings.Contains(got, "No sales in the last 14 days.") {
		t.Errorf("unexpected empty output: %q", got)
	}
	if !strings.Contains(got, "Note: 2 malformed records skipped.") {
		t.Errorf("missing skipped footer: %q", got)
	}
}

func TestRenderPerformanceTable_UndefinedWaste(t *testing.T) {
	noColor(t)
	res := analyzer.PerformanceResult{
		Items: []analyzer.ItemPerformance{
			{
				MenuItem:       "Chips & Chicken",
				TotalSold:      10,
				AvgDailySold:   analyzer.NewMeasure(5),
				TotalRevenue:   decimal.NewFromInt(1500),
				TotalWaste:     1,
				TotalWasteCost: decimal.NewFromInt(45),
				WastePercent:   analyzer.NewMeasure(10),
				Profitability:  decimal.NewFromInt(1455),
			},
			{
				MenuItem:       "A Very Long Menu Item Name",
				TotalWasteCost: decimal.Zero,
				TotalRevenue:   decimal.Zero,
				Profitability:  decimal.Zero,
				AvgDailySold:   analyzer.NewMeasure(0),
				WastePercent:   analyzer.Undefined(),
			},
		},
	}

	got := RenderPerformanceTable(res)

	for _, want := range []string{"Chips & Chicken", "10.0%", "1455.00", "A Very Long Men...", "n/a"} {
		if !strings.Contains(got, want) {
			t.Errorf("performance table missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "n/a%") {
		t.Errorf("undefined percent must not carry a %% sign:\n%s", got)
	}
}

func TestRenderPatternTable_AllDays(t *testing.T) {
	noColor(t)
	res := analyzer.DailyPatterns(nil)

	got := RenderPatternTable(res)

	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		if !strings.Contains(got, day) {
			t.Errorf("pattern table missing %s:\n%s", day, got)
		}
	}
	if strings.Count(got, "n/a") != 21 {
		t.Errorf("expected 21 n/a cells for an empty ledger, got %d:\n%s", strings.Count(got, "n/a"), got)
	}
	if strings.Index(got, "Monday") > strings.Index(got, "Sunday") {
		t.Error("Monday should be listed before Sunday")
	}
}

func TestRenderForecastTable_NoHistory(t *testing.T) {
	noColor(t)
	res := analyzer.ForecastResult{
		Days: []analyzer.ForecastDay{{Date: date(16), Demand: 0, DayOfWeek: "Saturday"}},
	}

	got := RenderForecastTable(res)
	if !strings.Contains(got, "forecast is 0") {
		t.Errorf("expected no-history note:\n%s", got)
	}
}

func TestRenderWasteTable(t *testing.T) {
	noColor(t)
	res := analyzer.WasteResult{
		Items: []analyzer.ItemWaste{
			{MenuItem: "Samosa", WasteQuantity: 8, WasteCost: decimal.RequireFromString("96"), QuantitySold: 40, WastePercent: analyzer.NewMeasure(20)},
			{MenuItem: "Juice", WasteQuantity: 0, WasteCost: decimal.Zero, QuantitySold: 0, WastePercent: analyzer.Undefined()},
		},
	}

	got := RenderWasteTable(res)

	for _, want := range []string{"Samosa", "96.00", "20.0%", "Juice", "n/a"} {
		if !strings.Contains(got, want) {
			t.Errorf("waste table missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Samosa") > strings.Index(got, "Juice") {
		t.Error("rows must keep analyzer order")
	}
}

func TestRenderRecommendations(t *testing.T) {
	noColor(t)
	res := analyzer.RecommendationResult{
		Items: []analyzer.Recommendation{
			{Severity: analyzer.SeverityWarning, Message: "High waste detected for Samosa: 20.0%", Action: "Consider reducing portions or improving demand forecasting for Samosa"},
			{Severity: analyzer.SeverityCritical, Message: "High overall waste: 27.8% of revenue", Action: "Implement pre-ordering system and improve inventory management"},
		},
	}

	got := RenderRecommendations(res)

	want := "1. [WARNING] High waste detected for Samosa: 20.0%\n" +
		"   Action: Consider reducing portions or improving demand forecasting for Samosa\n" +
		"2. [CRITICAL] High overall waste: 27.8% of revenue\n" +
		"   Action: Implement pre-ordering system and improve inventory management\n"
	if got != want {
		t.Errorf("RenderRecommendations() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderRecommendations_Empty(t *testing.T) {
	noColor(t)
	got := RenderRecommendations(analyzer.RecommendationResult{})
	if !strings.HasPrefix(got, "No recommendations.") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	noColor(t)
	tests := []struct {
		name   string
		from   time.Time
		to     time.Time
		period string
	}{
		{"open", time.Time{}, time.Time{}, "all records"},
		{"closed", date(1), date(15), "2024-03-01 to 2024-03-15"},
		{"from only", date(1), time.Time{}, "since 2024-03-01"},
		{"to only", time.Time{}, date(15), "until 2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSummary(analyzer.Summary{
				From:          tt.from,
				To:            tt.to,
				TotalRevenue:  decimal.Zero,
				WasteCost:     decimal.Zero,
				AvgDailySales: analyzer.Undefined(),
				WastePercent:  analyzer.Undefined(),
			})
			if !strings.Contains(got, tt.period) {
				t.Errorf("summary missing period %q:\n%s", tt.period, got)
			}
			if !strings.Contains(got, "Waste/revenue:    n/a") {
				t.Errorf("undefined ratio should render n/a:\n%s", got)
			}
		})
	}
}

func TestRenderCatalogTable(t *testing.T) {
	noColor(t)
	items := []*store.MenuItem{
		{Name: "Tea & Mandazi", Category: "breakfast", Price: decimal.NewFromInt(50), Active: true},
		{Name: "Samosa", Category: "snack", Price: decimal.RequireFromString("42.5"), Active: false},
	}

	got := RenderCatalogTable(items)

	for _, want := range []string{"Tea & Mandazi", "breakfast", "50.00", "42.50", "active", "inactive"} {
		if !strings.Contains(got, want) {
			t.Errorf("catalog table missing %q:\n%s", want, got)
		}
	}

	if got := RenderCatalogTable(nil); !strings.Contains(got, "Catalog is empty") {
		t.Errorf("empty catalog output = %q", got)
	}
}

func TestRenderStatus(t *testing.T) {
	got := RenderStatus(&store.Stats{Records: 16, FirstDate: date(1), LastDate: date(8), MenuItems: 8}, "/tmp/menuwise.db")

	for _, want := range []string{"/tmp/menuwise.db", "8 active", "16", "2024-03-01 to 2024-03-08 (8 days)"} {
		if !strings.Contains(got, want) {
			t.Errorf("status missing %q:\n%s", want, got)
		}
	}

	empty := RenderStatus(&store.Stats{}, "db")
	if !strings.Contains(empty, "none") {
		t.Errorf("empty status should say none:\n%s", empty)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Samosa", 10, "Samosa"},
		{"Chapati & Beans", 10, "Chapati..."},
		{"Ugali", 3, "Uga"},
		{"Crème brûlée tart", 8, "Crème..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
