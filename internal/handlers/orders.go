package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/themizzi/sauceshop/internal/repository"
	"github.com/themizzi/sauceshop/internal/services"
	"github.com/themizzi/sauceshop/internal/store"
)

// OrderHandler serves order details
type OrderHandler struct {
	sessions     *Sessions
	orderService services.OrderService
}

// NewOrderHandler creates a new order handler. A nil orderService disables
// the archive lookup.
func NewOrderHandler(sessions *Sessions, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		sessions:     sessions,
		orderService: orderService,
	}
}

// ServeHTTP handles GET /orders/{id}. Orders the session did not place itself
// are looked up in the archive before falling back to the live cart.
func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	orderID := r.PathValue("id")
	writeResponse(w, h.sessions.Do(r, func(s *store.Store) store.Response {
		if s.State() == store.Authenticated && h.orderService != nil {
			if _, ok := s.Order(orderID); !ok {
				h.restoreArchived(s, orderID)
			}
		}
		return s.GetOrderDetails(orderID)
	}))
}

func (h *OrderHandler) restoreArchived(s *store.Store, orderID string) {
	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		if !errors.Is(err, repository.ErrOrderNotFound) {
			log.Printf("Error reading archived order %s: %v", orderID, err)
		}
		return
	}
	s.RestoreOrder(*order)
}
