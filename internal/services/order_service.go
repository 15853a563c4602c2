package services

import (
	"fmt"

	"github.com/themizzi/sauceshop/internal/models"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	CreateOrder(order *models.Order) error
	GetOrderByOrderID(orderID string) (*models.Order, error)
}

// OrderService archives orders placed through session stores
type OrderService interface {
	ArchiveOrder(order models.Order) error
	GetOrder(orderID string) (*models.Order, error)
}

// OrderServiceImpl implements OrderService
type OrderServiceImpl struct {
	orderRepo OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
	}
}

// ArchiveOrder persists a checkout snapshot
func (s *OrderServiceImpl) ArchiveOrder(order models.Order) error {
	if order.OrderID == "" {
		return fmt.Errorf("invalid order: %w", models.ErrInvalidOrderID)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("invalid order: %w", models.ErrEmptyOrder)
	}

	if err := s.orderRepo.CreateOrder(&order); err != nil {
		return fmt.Errorf("failed to archive order: %w", err)
	}

	return nil
}

// GetOrder retrieves an archived order by its public ID
func (s *OrderServiceImpl) GetOrder(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
