package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/themizzi/sauceshop/internal/models"
)

// MemoryOrderRepository archives orders in process memory. It is the default
// when no database is configured and is safe for concurrent use.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewMemoryOrderRepository creates an empty in-memory archive
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// CreateOrder stores a copy of order keyed by its public order ID
func (r *MemoryOrderRepository) CreateOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.OrderID]; exists {
		return fmt.Errorf("failed to create order: duplicate order id %s", order.OrderID)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	stored := *order
	stored.Items = append([]string(nil), order.Items...)
	r.orders[order.OrderID] = stored
	return nil
}

// GetOrderByOrderID returns a copy of the archived order
func (r *MemoryOrderRepository) GetOrderByOrderID(orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	out := stored
	out.Items = append([]string(nil), stored.Items...)
	return &out, nil
}
