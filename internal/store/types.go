package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. Price is the current selling price; records
// keep the price they were sold at.
type MenuItem struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Active   bool
	AddedAt  time.Time
}

// Stats describes the contents of the store.
type Stats struct {
	Records   int
	FirstDate time.Time // zero when there are no records
	LastDate  time.Time // zero when there are no records
	MenuItems int       // active catalog entries
}
