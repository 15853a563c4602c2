package handlers

import (
	"net/http"

	"github.com/themizzi/sauceshop/internal/store"
)

// ProductsHandler serves the catalog
type ProductsHandler struct {
	sessions *Sessions
}

// NewProductsHandler creates a new ProductsHandler
func NewProductsHandler(sessions *Sessions) *ProductsHandler {
	return &ProductsHandler{
		sessions: sessions,
	}
}

// ServeHTTP handles GET /products
func (h *ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeResponse(w, h.sessions.Do(r, func(s *store.Store) store.Response {
		return s.GetProducts()
	}))
}
