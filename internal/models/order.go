package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlaceholderShippingAddress is reported for every order; the mock never collects an address
const PlaceholderShippingAddress = "Test Address"

// CheckoutInfo is the customer data submitted at checkout
type CheckoutInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	PostalCode string `json:"postalCode"`
}

// Order is a snapshot of a cart taken at checkout time
type Order struct {
	ID              string
	OrderID         string
	Items           []string
	SubtotalCents   int64
	TaxCents        int64
	ShippingAddress string
	Customer        CheckoutInfo
	CreatedAt       time.Time
}

// Domain errors
var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrInvalidOrderID = errors.New("order id cannot be empty")
)

// NewOrder creates an order from a cart snapshot. The items slice is copied.
func NewOrder(orderID string, items []string, customer CheckoutInfo, now time.Time) (*Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	snapshot := make([]string, len(items))
	copy(snapshot, items)

	subtotal := SubtotalCents(snapshot)

	return &Order{
		ID:              uuid.New().String(),
		OrderID:         orderID,
		Items:           snapshot,
		SubtotalCents:   subtotal,
		TaxCents:        TaxCents(subtotal),
		ShippingAddress: PlaceholderShippingAddress,
		Customer:        customer,
		CreatedAt:       now,
	}, nil
}

// FormatOrderID renders the public order identifier for a millisecond timestamp
func FormatOrderID(unixMilli int64) string {
	return fmt.Sprintf("order-%d", unixMilli)
}

// Entries returns the order items as cart entries
func (o *Order) Entries() []CartEntry {
	return EntriesOf(o.Items)
}

// GetFormattedTotal returns the subtotal as a decimal string
func (o *Order) GetFormattedTotal() string {
	return FormatCents(o.SubtotalCents)
}

// GetFormattedTax returns the tax as a decimal string
func (o *Order) GetFormattedTax() string {
	return FormatCents(o.TaxCents)
}
