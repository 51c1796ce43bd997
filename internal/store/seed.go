package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// Sample-data shape: weekday traffic is twice the weekend's, each item draws a
// popularity factor per day and waste runs at 5-20% of that day's sales.
const (
	sampleWeekdayDemand = 120
	sampleWeekendDemand = 60
)

// SampleLedger builds a deterministic sample ledger covering the days+1
// calendar days ending on Day(now), one record per catalog item per day.
// onDay, when non-nil, is called once per generated day.
func SampleLedger(catalog []*MenuItem, now time.Time, days int, seed int64, onDay func()) sales.Ledger {
	r := rand.New(rand.NewSource(seed))
	end := sales.Day(now)
	start := end.AddDate(0, 0, -days)

	ledger := make(sales.Ledger, 0, (days+1)*len(catalog))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		base := float64(sampleWeekdayDemand)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			base = sampleWeekendDemand
		}

		for _, item := range catalog {
			mean := base * (0.3 + r.Float64()*1.2)
			sold := int(r.NormFloat64()*mean*0.3 + mean)
			if sold < 0 {
				sold = 0
			}
			waste := int(float64(sold) * (0.05 + r.Float64()*0.15))

			ledger = append(ledger, sales.NewRecord(d, item.Name, sold, item.Price, waste))
		}

		if onDay != nil {
			onDay()
		}
	}

	return ledger
}

// SeedSample writes a sample ledger for the active catalog. It is only ever
// called on explicit request; the store never substitutes sample data for a
// ledger it failed to read.
func (s *Store) SeedSample(ctx context.Context, now time.Time, days int, seed int64, onDay func()) (int, error) {
	if days < 0 {
		return 0, fmt.Errorf("invalid days: %d (must not be negative)", days)
	}

	catalog, err := s.ListMenuItems(ctx, false)
	if err != nil {
		return 0, err
	}
	if len(catalog) == 0 {
		return 0, fmt.Errorf("menu catalog is empty: add items with 'menuwise catalog set' first")
	}

	ledger := SampleLedger(catalog, now, days, seed, onDay)
	if err := s.InsertRecords(ctx, ledger); err != nil {
		return 0, fmt.Errorf("failed to store sample data: %w", err)
	}

	return len(ledger), nil
}
