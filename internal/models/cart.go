package models

import (
	"errors"
	"fmt"
)

// TaxRateBasisPoints is the sales tax applied to cart and order totals (8%)
const TaxRateBasisPoints = 800

// ErrDuplicateItem is returned when adding a product that is already in the cart
var ErrDuplicateItem = errors.New("product already in cart")

// CartEntry is the JSON projection of one cart position
type CartEntry struct {
	ID string `json:"id"`
}

// Cart is an insertion-ordered set of product IDs
type Cart struct {
	ids []string
}

// Add appends id to the cart. Adding an ID that is already present is rejected.
func (c *Cart) Add(id string) error {
	if c.Contains(id) {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, id)
	}
	c.ids = append(c.ids, id)
	return nil
}

// Remove drops every occurrence of id. Removing an absent ID is a no-op.
func (c *Cart) Remove(id string) {
	kept := c.ids[:0]
	for _, existing := range c.ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	c.ids = kept
}

// Contains reports whether id is in the cart
func (c *Cart) Contains(id string) bool {
	for _, existing := range c.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of items in the cart
func (c *Cart) Len() int {
	return len(c.ids)
}

// IsEmpty returns true if the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.ids) == 0
}

// IDs returns a copy of the cart contents in insertion order
func (c *Cart) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// View returns the cart as a list of entries in insertion order.
// The result is never nil so it serializes as [] when empty.
func (c *Cart) View() []CartEntry {
	return EntriesOf(c.ids)
}

// EntriesOf projects product IDs onto cart entries
func EntriesOf(ids []string) []CartEntry {
	entries := make([]CartEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, CartEntry{ID: id})
	}
	return entries
}

// SubtotalCents sums catalog prices for ids. Unknown products contribute nothing.
func SubtotalCents(ids []string) int64 {
	var total int64
	for _, id := range ids {
		if p, ok := FindProduct(id); ok {
			total += p.PriceCents
		}
	}
	return total
}

// TaxCents returns the tax owed on subtotal, rounded half up to the cent
func TaxCents(subtotal int64) int64 {
	return (subtotal*TaxRateBasisPoints + 5000) / 10000
}

// FormatCents renders an amount in minor units as a decimal string, e.g. 3998 -> "39.98"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
