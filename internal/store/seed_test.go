package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSampleLedger_Deterministic(t *testing.T) {
	catalog := []*MenuItem{
		{Name: "Chapati & Beans", Price: decimal.NewFromInt(80)},
		{Name: "Juice", Price: decimal.NewFromInt(60)},
	}
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	days := 0
	a := SampleLedger(catalog, now, 90, 42, func() { days++ })
	b := SampleLedger(catalog, now, 90, 42, nil)

	if days != 91 {
		t.Errorf("onDay called %d times, want 91", days)
	}
	if len(a) != 91*2 {
		t.Fatalf("expected %d records, got %d", 91*2, len(a))
	}
	for i := range a {
		if a[i].QuantitySold != b[i].QuantitySold || a[i].WasteQuantity != b[i].WasteQuantity {
			t.Fatalf("record %d differs between runs with the same seed", i)
		}
		if err := a[i].Validate(); err != nil {
			t.Fatalf("sample record %d invalid: %v", i, err)
		}
	}

	if !a[0].Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first date = %s, want 2024-01-01", a[0].Date)
	}
	if !a[len(a)-1].Date.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last date = %s, want 2024-03-31", a[len(a)-1].Date)
	}
}

func TestSeedSample(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	if _, err := s.SeedSample(ctx, now, 7, 42, nil); err == nil {
		t.Error("SeedSample() should fail with an empty catalog")
	}

	mustUpsert(t, s, "Samosa", "40")
	mustUpsert(t, s, "Juice", "60")

	n, err := s.SeedSample(ctx, now, 7, 42, nil)
	if err != nil {
		t.Fatalf("SeedSample() failed: %v", err)
	}
	if n != 16 {
		t.Errorf("seeded %d records, want 16", n)
	}

	ledger, err := s.LoadLedger(ctx)
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	if len(ledger) != n {
		t.Errorf("ledger has %d records, want %d", len(ledger), n)
	}
}
