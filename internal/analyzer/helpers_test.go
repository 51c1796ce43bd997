package analyzer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// monday is 2024-03-04, a Monday.
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return monday.AddDate(0, 0, offset)
}

func record(date time.Time, item string, sold int, price string, waste int) sales.Record {
	return sales.NewRecord(date, item, sold, decimal.RequireFromString(price), waste)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decs(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

// canteenLedger is a two-week ledger with three items and weekend dips.
func canteenLedger() sales.Ledger {
	var ledger sales.Ledger
	for i := 0; i < 14; i++ {
		d := day(i)
		base := 40
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			base = 20
		}
		ledger = append(ledger,
			record(d, "Chapati & Beans", base, "80", base/10),
			record(d, "Rice & Stew", base+10, "120", 2),
			record(d, "Tea & Mandazi", base*2, "50", base/4),
		)
	}
	return ledger
}
