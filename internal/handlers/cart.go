package handlers

import (
	"net/http"

	"github.com/themizzi/sauceshop/internal/store"
)

// CartHandler serves the cart view and cart item mutations
type CartHandler struct {
	sessions *Sessions
}

// AddItemRequest is the body of POST /cart/items
type AddItemRequest struct {
	ID string `json:"id"`
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *Sessions) *CartHandler {
	return &CartHandler{
		sessions: sessions,
	}
}

// ServeHTTP handles GET /cart, POST /cart/items and DELETE /cart/items/{id}
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/cart":
		writeResponse(w, h.sessions.Do(r, func(s *store.Store) store.Response {
			return s.GetCart()
		}))

	case r.Method == http.MethodPost && r.URL.Path == "/cart/items":
		var req AddItemRequest
		writeResponse(w, h.sessions.DoWithBody(r, &req, func(s *store.Store) store.Response {
			return s.AddToCart(req.ID)
		}))

	case r.Method == http.MethodDelete && id != "":
		writeResponse(w, h.sessions.Do(r, func(s *store.Store) store.Response {
			return s.RemoveFromCart(id)
		}))

	default:
		methodNotAllowed(w)
	}
}
