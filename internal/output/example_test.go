package output_test

import (
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/menuwise/internal/analyzer"
	"github.com/blackwell-systems/menuwise/internal/output"
)

func ExampleRenderForecastTable() {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	sat := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	res := analyzer.ForecastResult{
		Days: []analyzer.ForecastDay{
			{Date: sat, Demand: 60, DayOfWeek: "Saturday"},
			{Date: sat.AddDate(0, 0, 1), Demand: 60, DayOfWeek: "Sunday"},
		},
		BasisDays: 7,
	}

	fmt.Print(output.RenderForecastTable(res))
	// Output:
	// Date        Day        Demand
	// ─────────────────────────────
	// 2024-03-16  Saturday       60
	// 2024-03-17  Sunday         60
	//
	// Flat forecast from the mean of the last 7 recorded days.
}

// Example showing how seed drives a progress bar
func ExampleProgressBar() {
	progress := output.NewProgress(90, "Generating sample days")
	progress.SetWriter(os.Stdout)

	for i := 0; i < 90; i++ {
		progress.Increment()
	}
	progress.Finish()
	// Output:
	// [==============================] 90/90 Generating sample days
}
