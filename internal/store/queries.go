package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/menuwise/internal/sales"
)

// ErrUnknownMenuItem is returned when a sale names an item that is not an
// active catalog entry.
var ErrUnknownMenuItem = errors.New("unknown menu item")

// Sales record operations

const insertRecordQuery = `
	INSERT OR REPLACE INTO sales_records
	(date, menu_item, day_of_week, quantity_sold, unit_price, revenue, waste_quantity, waste_cost, is_weekday)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRecord(ctx context.Context, ex execer, rec sales.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	_, err := ex.ExecContext(ctx, insertRecordQuery,
		rec.Date.Format(sales.DateLayout),
		rec.MenuItem,
		rec.Weekday(),
		rec.QuantitySold,
		rec.UnitPrice.String(),
		rec.Revenue.String(),
		rec.WasteQuantity,
		rec.WasteCost.String(),
		rec.IsWeekday(),
	)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to insert record %s/%s",
			rec.Date.Format(sales.DateLayout), rec.MenuItem), err)
	}
	return nil
}

// InsertRecord validates and stores a record. A record for the same date and
// item replaces the stored one.
func (s *Store) InsertRecord(ctx context.Context, rec sales.Record) error {
	return insertRecord(ctx, s.db, rec)
}

// InsertRecords stores records in one transaction. Nothing is written if any
// record is invalid.
func (s *Store) InsertRecords(ctx context.Context, recs []sales.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range recs {
		if err := insertRecord(ctx, tx, rec); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// AddSale records a day's sales for a catalog item at its current price.
func (s *Store) AddSale(ctx context.Context, date time.Time, item string, sold, waste int) (sales.Record, error) {
	mi, err := s.GetMenuItem(ctx, item)
	if err != nil {
		return sales.Record{}, err
	}
	if !mi.Active {
		return sales.Record{}, fmt.Errorf("%w: %s is no longer on the menu", ErrUnknownMenuItem, item)
	}

	rec := sales.NewRecord(date, mi.Name, sold, mi.Price, waste)
	if err := s.InsertRecord(ctx, rec); err != nil {
		return sales.Record{}, err
	}
	return rec, nil
}

// LoadLedger returns every stored record ordered by date and item. Any
// failure to read the ledger wraps sales.ErrDataUnavailable.
func (s *Store) LoadLedger(ctx context.Context) (sales.Ledger, error) {
	query := `
		SELECT date, menu_item, quantity_sold, unit_price, revenue, waste_quantity, waste_cost
		FROM sales_records
		ORDER BY date, menu_item
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sales.ErrDataUnavailable, wrapQueryErr("failed to load ledger", err))
	}
	defer rows.Close()

	ledger := make(sales.Ledger, 0)
	for rows.Next() {
		var (
			rec                           sales.Record
			date, price, revenue, wasteCo string
		)
		if err := rows.Scan(&date, &rec.MenuItem, &rec.QuantitySold, &price, &revenue, &rec.WasteQuantity, &wasteCo); err != nil {
			return nil, fmt.Errorf("%w: failed to scan record row: %w", sales.ErrDataUnavailable, err)
		}

		if rec.Date, err = time.Parse(sales.DateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: failed to parse date %q: %w", sales.ErrDataUnavailable, date, err)
		}
		if rec.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("%w: failed to parse unit price %q: %w", sales.ErrDataUnavailable, price, err)
		}
		if rec.Revenue, err = decimal.NewFromString(revenue); err != nil {
			return nil, fmt.Errorf("%w: failed to parse revenue %q: %w", sales.ErrDataUnavailable, revenue, err)
		}
		if rec.WasteCost, err = decimal.NewFromString(wasteCo); err != nil {
			return nil, fmt.Errorf("%w: failed to parse waste cost %q: %w", sales.ErrDataUnavailable, wasteCo, err)
		}

		ledger = append(ledger, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating records: %w", sales.ErrDataUnavailable, err)
	}

	return ledger, nil
}

// Menu catalog operations

// UpsertMenuItem inserts a catalog entry or updates its category, price and
// active flag. The original added_at date is kept.
func (s *Store) UpsertMenuItem(ctx context.Context, item MenuItem) error {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return fmt.Errorf("menu item name must not be empty")
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("menu item %s: price must not be negative", name)
	}
	category := strings.TrimSpace(item.Category)
	if category == "" {
		category = "general"
	}
	addedAt := item.AddedAt
	if addedAt.IsZero() {
		addedAt = time.Now()
	}

	query := `
		INSERT INTO menu_items (name, category, price, active, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			price = excluded.price,
			active = excluded.active
	`

	_, err := s.db.ExecContext(ctx, query,
		name,
		category,
		item.Price.String(),
		item.Active,
		addedAt.Format(sales.DateLayout),
	)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to upsert menu item %s", name), err)
	}
	return nil
}

// GetMenuItem retrieves a catalog entry by name.
func (s *Store) GetMenuItem(ctx context.Context, name string) (*MenuItem, error) {
	query := `
		SELECT name, category, price, active, added_at
		FROM menu_items
		WHERE name = ?
	`

	item, err := scanMenuItem(s.db.QueryRowContext(ctx, query, strings.TrimSpace(name)))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMenuItem, name)
	}
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to get menu item %s", name), err)
	}
	return item, nil
}

// ListMenuItems returns catalog entries ordered by category and name.
func (s *Store) ListMenuItems(ctx context.Context, includeInactive bool) ([]*MenuItem, error) {
	query := `
		SELECT name, category, price, active, added_at
		FROM menu_items
	`
	if !includeInactive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY category, name"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapQueryErr("failed to list menu items", err)
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// DeactivateMenuItem takes an item off the menu. Its sales history stays.
func (s *Store) DeactivateMenuItem(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE menu_items SET active = 0 WHERE name = ?", name)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to deactivate menu item %s", name), err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownMenuItem, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (*MenuItem, error) {
	var (
		item           MenuItem
		price, addedAt string
	)
	if err := row.Scan(&item.Name, &item.Category, &price, &item.Active, &addedAt); err != nil {
		return nil, err
	}

	var err error
	if item.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("failed to parse price %q for %s: %w", price, item.Name, err)
	}
	if item.AddedAt, err = time.Parse(sales.DateLayout, addedAt); err != nil {
		return nil, fmt.Errorf("failed to parse added_at %q for %s: %w", addedAt, item.Name, err)
	}
	return &item, nil
}

// Stats

// GetStats returns record counts and the covered date range.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	var (
		stats       Stats
		first, last sql.NullString
	)

	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), MIN(date), MAX(date) FROM sales_records",
	).Scan(&stats.Records, &first, &last)
	if err != nil {
		return nil, wrapQueryErr("failed to get record stats", err)
	}

	if first.Valid {
		if stats.FirstDate, err = time.Parse(sales.DateLayout, first.String); err != nil {
			return nil, fmt.Errorf("failed to parse first date: %w", err)
		}
	}
	if last.Valid {
		if stats.LastDate, err = time.Parse(sales.DateLayout, last.String); err != nil {
			return nil, fmt.Errorf("failed to parse last date: %w", err)
		}
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM menu_items WHERE active = 1",
	).Scan(&stats.MenuItems)
	if err != nil {
		return nil, wrapQueryErr("failed to count menu items", err)
	}

	return &stats, nil
}
