package storage

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Carts (one per browser session)
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

-- One row per (product, size, color) combination
CREATE TABLE IF NOT EXISTS cart_lines(
  cart_id      TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id   TEXT NOT NULL,
  size         TEXT NOT NULL DEFAULT '',
  color        TEXT NOT NULL DEFAULT '',
  qty          INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  added_at     TEXT,
  updated_at   TEXT,
  PRIMARY KEY (cart_id, product_id, size, color)
);
CREATE INDEX IF NOT EXISTS idx_cart_lines_cart ON cart_lines(cart_id);

-- Wishlists
CREATE TABLE IF NOT EXISTS wishlists(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS wishlist_items(
  wishlist_id TEXT NOT NULL REFERENCES wishlists(id) ON DELETE CASCADE,
  product_id  TEXT NOT NULL,
  created_at  TEXT,
  PRIMARY KEY (wishlist_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}
