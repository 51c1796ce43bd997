package store

// sales_records keeps one row per (date, menu_item); re-recording a day
// replaces the earlier row. day_of_week and is_weekday are written for ad-hoc
// SQL and are never read back: both are derived from date.
const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
    name TEXT PRIMARY KEY,
    category TEXT NOT NULL DEFAULT 'general',
    price TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT 1,
    added_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sales_records (
    date TEXT NOT NULL,
    menu_item TEXT NOT NULL,
    day_of_week TEXT NOT NULL,
    quantity_sold INTEGER NOT NULL,
    unit_price TEXT NOT NULL,
    revenue TEXT NOT NULL,
    waste_quantity INTEGER NOT NULL,
    waste_cost TEXT NOT NULL,
    is_weekday BOOLEAN NOT NULL,
    PRIMARY KEY (date, menu_item)
);

CREATE INDEX IF NOT EXISTS idx_sales_item ON sales_records(menu_item);
CREATE INDEX IF NOT EXISTS idx_menu_active ON menu_items(active);
`
