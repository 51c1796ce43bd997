// Package sales defines the sales-record ledger shared by the store, the
// analyzer and the reporting layer.
package sales

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the civil-date format used on the command line and in storage.
const DateLayout = "2006-01-02"

// WasteCostFactor is the share of the sale price a wasted unit costs to produce.
var WasteCostFactor = decimal.RequireFromString("0.3")

var (
	// ErrInvalidRecord marks a record that breaks the ledger invariants.
	ErrInvalidRecord = errors.New("invalid sales record")

	// ErrDataUnavailable marks a ledger snapshot that could not be read from
	// the record store.
	ErrDataUnavailable = errors.New("sales data unavailable")
)

// Record is one row of the ledger: one menu item on one day.
type Record struct {
	Date          time.Time
	MenuItem      string
	QuantitySold  int
	UnitPrice     decimal.Decimal
	Revenue       decimal.Decimal
	WasteQuantity int
	WasteCost     decimal.Decimal
}

// Ledger is a snapshot of sales records. Storage order carries no meaning.
type Ledger []Record

// Day truncates t to its calendar date at UTC midnight. The calendar date is
// taken in t's own location so "2024-03-04 23:30 +03:00" stays on the 4th.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a civil date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// NewRecord builds a record with revenue and waste cost derived from the
// quantities and the unit price.
func NewRecord(date time.Time, item string, sold int, price decimal.Decimal, waste int) Record {
	return Record{
		Date:          Day(date),
		MenuItem:      item,
		QuantitySold:  sold,
		UnitPrice:     price,
		Revenue:       ExpectedRevenue(sold, price),
		WasteQuantity: waste,
		WasteCost:     ExpectedWasteCost(waste, price),
	}
}

// ExpectedRevenue returns sold * price.
func ExpectedRevenue(sold int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(sold)))
}

// ExpectedWasteCost returns waste * price * WasteCostFactor.
func ExpectedWasteCost(waste int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(waste))).Mul(WasteCostFactor)
}

// DayOfWeek is derived from Date and cannot disagree with it.
func (r Record) DayOfWeek() time.Weekday {
	return r.Date.Weekday()
}

// Weekday returns the English weekday name, e.g. "Monday".
func (r Record) Weekday() string {
	return r.Date.Weekday().String()
}

// IsWeekday reports whether the record falls on Monday through Friday.
func (r Record) IsWeekday() bool {
	wd := r.Date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Validate checks the record invariants. Waste is recorded spoilage and is
// deliberately not bounded by the quantity sold.
func (r Record) Validate() error {
	switch {
	case r.Date.IsZero():
		return fmt.Errorf("%w: missing date", ErrInvalidRecord)
	case strings.TrimSpace(r.MenuItem) == "":
		return fmt.Errorf("%w: empty menu item", ErrInvalidRecord)
	case r.QuantitySold < 0:
		return fmt.Errorf("%w: %s on %s: negative quantity sold %d",
			ErrInvalidRecord, r.MenuItem, r.Date.Format(DateLayout), r.QuantitySold)
	case r.WasteQuantity < 0:
		return fmt.Errorf("%w: %s on %s: negative waste quantity %d",
			ErrInvalidRecord, r.MenuItem, r.Date.Format(DateLayout), r.WasteQuantity)
	case r.UnitPrice.IsNegative():
		return fmt.Errorf("%w: %s on %s: negative unit price %s",
			ErrInvalidRecord, r.MenuItem, r.Date.Format(DateLayout), r.UnitPrice)
	}

	if want := ExpectedRevenue(r.QuantitySold, r.UnitPrice); !r.Revenue.Equal(want) {
		return fmt.Errorf("%w: %s on %s: revenue %s, want %s",
			ErrInvalidRecord, r.MenuItem, r.Date.Format(DateLayout), r.Revenue, want)
	}
	if want := ExpectedWasteCost(r.WasteQuantity, r.UnitPrice); !r.WasteCost.Equal(want) {
		return fmt.Errorf("%w: %s on %s: waste cost %s, want %s",
			ErrInvalidRecord, r.MenuItem, r.Date.Format(DateLayout), r.WasteCost, want)
	}

	return nil
}
