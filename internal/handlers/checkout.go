package handlers

import (
	"log"
	"net/http"

	"github.com/themizzi/sauceshop/internal/models"
	"github.com/themizzi/sauceshop/internal/services"
	"github.com/themizzi/sauceshop/internal/store"
)

// CheckoutHandler places orders and archives them
type CheckoutHandler struct {
	sessions     *Sessions
	orderService services.OrderService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions *Sessions, orderService services.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		sessions:     sessions,
		orderService: orderService,
	}
}

// ServeHTTP handles POST /checkout
func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var (
		info   models.CheckoutInfo
		order  models.Order
		placed bool
	)
	resp := h.sessions.DoWithBody(r, &info, func(s *store.Store) store.Response {
		resp := s.Checkout(info)
		if body, ok := resp.Body.(store.CheckoutBody); ok && resp.OK() {
			order, placed = s.Order(body.OrderID)
		}
		return resp
	})

	// The archive is best effort; the session already holds the order
	if placed && h.orderService != nil {
		if err := h.orderService.ArchiveOrder(order); err != nil {
			log.Printf("Error archiving order %s: %v", order.OrderID, err)
		} else {
			log.Printf("Order placed - OrderID: %s, Items: %d", order.OrderID, len(order.Items))
		}
	}

	writeResponse(w, resp)
}
