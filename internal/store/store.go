// Package store implements an in-process shopping cart API used as a test double
// for the demo storefront. Every operation is synchronous and total: outcomes
// are reported as a Response carrying an HTTP status and a JSON-ready body.
//
// A Store holds exactly one session. It is not safe for concurrent use;
// callers that share a Store across goroutines must serialize access.
package store

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/themizzi/sauceshop/internal/models"
)

// Placeholder amounts reported for order IDs this store never issued
const (
	placeholderTotal = "39.98"
	placeholderTax   = "3.20"
)

// AuthState is the authentication gate of a session
type AuthState int

// Authentication states
const (
	Anonymous AuthState = iota
	Authenticated
)

func (s AuthState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Store is a single shopping session: a token gate, a cart and the orders placed from it
type Store struct {
	token  string
	cart   models.Cart
	orders map[string]*models.Order

	orderIDs *OrderSequence
	now      func() time.Time
	newToken func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for order IDs and timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithTokenSource overrides how login tokens are minted
func WithTokenSource(newToken func() string) Option {
	return func(s *Store) {
		s.newToken = newToken
	}
}

// WithOrderSequence makes the store draw order IDs from seq. Stores sharing
// a sequence never issue the same order ID.
func WithOrderSequence(seq *OrderSequence) Option {
	return func(s *Store) {
		s.orderIDs = seq
	}
}

// New creates an anonymous session with an empty cart
func New(opts ...Option) *Store {
	s := &Store{
		orders:   make(map[string]*models.Order),
		orderIDs: &OrderSequence{},
		now:      time.Now,
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports whether a token has been set
func (s *Store) State() AuthState {
	if s.token == "" {
		return Anonymous
	}
	return Authenticated
}

// Token returns the current token, empty when anonymous
func (s *Store) Token() string {
	return s.token
}

// Login checks credentials against the known accounts. It does not change the
// session; the caller passes the returned token to SetToken.
func (s *Store) Login(username, password string) Response {
	creds := models.Credentials{Username: username, Password: password}

	switch {
	case !creds.IsComplete():
		return respond(http.StatusBadRequest, ErrorBody{Error: "Username and password are required"})
	case creds.Username == models.StandardUser && creds.Password == models.StandardSecret:
		return respond(http.StatusOK, TokenBody{Token: s.newToken()})
	case creds.Username == models.LockedOutUser:
		return respond(http.StatusForbidden, ErrorBody{Error: "User is locked out"})
	default:
		return respond(http.StatusUnauthorized, ErrorBody{Error: "Invalid credentials"})
	}
}

// SetToken records the bearer token for subsequent calls. An empty token
// returns the session to the anonymous state.
func (s *Store) SetToken(token string) {
	s.token = token
}

// GetProducts returns the full catalog
func (s *Store) GetProducts() Response {
	if s.State() != Authenticated {
		return unauthorized()
	}
	return respond(http.StatusOK, models.Catalog())
}

// AddToCart appends productID to the cart. Duplicates are rejected.
func (s *Store) AddToCart(productID string) Response {
	if s.State() != Authenticated {
		return unauthorized()
	}
	if err := s.cart.Add(productID); err != nil {
		if errors.Is(err, models.ErrDuplicateItem) {
			return respond(http.StatusBadRequest, MessageBody{Message: "Product already in cart"})
		}
		return respond(http.StatusBadRequest, MessageBody{Message: err.Error()})
	}
	return respond(http.StatusOK, CartBody{Items: s.cart.View()})
}

// RemoveFromCart drops productID from the cart; absent IDs are ignored
func (s *Store) RemoveFromCart(productID string) Response {
	if s.State() != Authenticated {
		return unauthorized()
	}
	s.cart.Remove(productID)
	return respond(http.StatusOK, CartBody{Items: s.cart.View()})
}

// GetCart returns the cart view with subtotal, tax and final total
func (s *Store) GetCart() Response {
	if s.State() != Authenticated {
		return unauthorized()
	}
	subtotal := models.SubtotalCents(s.cart.IDs())
	tax := models.TaxCents(subtotal)
	return respond(http.StatusOK, CartTotalsBody{
		Items:      s.cart.View(),
		Total:      models.FormatCents(subtotal),
		Tax:        models.FormatCents(tax),
		FinalTotal: models.FormatCents(subtotal + tax),
	})
}

// Checkout snapshots the cart into a new order. The customer info is recorded
// but not validated, and the cart is left as is.
func (s *Store) Checkout(info models.CheckoutInfo) Response {
	if s.State() != Authenticated {
		return unauthorized()
	}
	if s.cart.IsEmpty() {
		return respond(http.StatusBadRequest, MessageBody{Message: "Cart is empty"})
	}

	now := s.now()
	order, err := models.NewOrder(s.orderIDs.Next(now), s.cart.IDs(), info, now)
	if err != nil {
		return respond(http.StatusBadRequest, MessageBody{Message: err.Error()})
	}
	s.orders[order.OrderID] = order

	return respond(http.StatusOK, CheckoutBody{
		OrderID: order.OrderID,
		Items:   order.Entries(),
	})
}

// GetOrderDetails reports an order. Orders placed through this store return
// their checkout snapshot; any other ID is answered with the live cart and
// placeholder amounts.
func (s *Store) GetOrderDetails(orderID string) Response {
	if s.State() != Authenticated {
		return unauthorized()
	}
	if order, ok := s.orders[orderID]; ok {
		return respond(http.StatusOK, OrderDetailsBody{
			OrderID:         order.OrderID,
			Items:           order.Entries(),
			Total:           order.GetFormattedTotal(),
			Tax:             order.GetFormattedTax(),
			ShippingAddress: order.ShippingAddress,
		})
	}
	return respond(http.StatusOK, OrderDetailsBody{
		OrderID:         orderID,
		Items:           s.cart.View(),
		Total:           placeholderTotal,
		Tax:             placeholderTax,
		ShippingAddress: models.PlaceholderShippingAddress,
	})
}

// Order returns a copy of an order placed through this store
func (s *Store) Order(orderID string) (models.Order, bool) {
	order, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, false
	}
	out := *order
	out.Items = append([]string(nil), order.Items...)
	return out, true
}

// RestoreOrder makes an order placed elsewhere readable through
// GetOrderDetails. Orders this store already holds are left untouched.
func (s *Store) RestoreOrder(order models.Order) {
	if _, ok := s.orders[order.OrderID]; ok {
		return
	}
	order.Items = append([]string(nil), order.Items...)
	s.orders[order.OrderID] = &order
}

// OrderSequence issues order IDs derived from the clock. Each ID is bumped
// past the last one issued, so IDs stay unique when the clock stalls or goes
// backwards. It is safe for concurrent use.
type OrderSequence struct {
	last atomic.Int64
}

// Next returns the order ID for a checkout at now
func (q *OrderSequence) Next(now time.Time) string {
	milli := now.UnixMilli()
	for {
		last := q.last.Load()
		next := max(milli, last+1)
		if q.last.CompareAndSwap(last, next) {
			return models.FormatOrderID(next)
		}
	}
}
