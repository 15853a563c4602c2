package database

import (
	"database/sql"
	"fmt"
)

// Schema creates the order archive tables
const Schema = `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		order_id VARCHAR(64) UNIQUE NOT NULL,
		subtotal_cents BIGINT NOT NULL,
		tax_cents BIGINT NOT NULL,
		shipping_address VARCHAR(255) NOT NULL,
		first_name VARCHAR(255) NOT NULL DEFAULT '',
		last_name VARCHAR(255) NOT NULL DEFAULT '',
		postal_code VARCHAR(32) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS order_items (
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		product_id VARCHAR(64) NOT NULL,
		PRIMARY KEY (order_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_orders_order_id ON orders(order_id);
	`

// RunMigrations creates the necessary database tables
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create order tables: %w", err)
	}

	return nil
}
