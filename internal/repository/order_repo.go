package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/themizzi/sauceshop/internal/models"
)

// ErrOrderNotFound is returned when no archived order matches the lookup
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository archives checkout snapshots in PostgreSQL
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository with a specific database connection
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// CreateOrder stores an order and its items in one transaction
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, order_id, subtotal_cents, tax_cents, shipping_address,
		                    first_name, last_name, postal_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = tx.Exec(query,
		order.ID,
		order.OrderID,
		order.SubtotalCents,
		order.TaxCents,
		order.ShippingAddress,
		order.Customer.FirstName,
		order.Customer.LastName,
		order.Customer.PostalCode,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, position, product_id)
		VALUES ($1, $2, $3)
	`
	for i, productID := range order.Items {
		if _, err := tx.Exec(itemQuery, order.ID, i, productID); err != nil {
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	order.CreatedAt = createdAt
	return nil
}

// GetOrderByOrderID retrieves an order and its items by public order ID
func (r *OrderRepository) GetOrderByOrderID(orderID string) (*models.Order, error) {
	query := `
		SELECT id, order_id, subtotal_cents, tax_cents, shipping_address,
		       first_name, last_name, postal_code, created_at
		FROM orders
		WHERE order_id = $1
	`

	order := &models.Order{}
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID,
		&order.OrderID,
		&order.SubtotalCents,
		&order.TaxCents,
		&order.ShippingAddress,
		&order.Customer.FirstName,
		&order.Customer.LastName,
		&order.Customer.PostalCode,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT product_id
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	order.Items = []string{}
	for rows.Next() {
		var productID string
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, productID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	return order, nil
}
