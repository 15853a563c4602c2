package store

import (
	"encoding/json"
	"net/http"

	"github.com/themizzi/sauceshop/internal/models"
)

// ErrorBody is returned by authentication failures
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is returned by request validation failures
type MessageBody struct {
	Message string `json:"message"`
}

// TokenBody is returned by a successful login
type TokenBody struct {
	Token string `json:"token"`
}

// CartBody is the cart view returned by cart mutations
type CartBody struct {
	Items []models.CartEntry `json:"items"`
}

// CartTotalsBody is the cart view with computed amounts
type CartTotalsBody struct {
	Items      []models.CartEntry `json:"items"`
	Total      string             `json:"total"`
	Tax        string             `json:"tax"`
	FinalTotal string             `json:"finalTotal"`
}

// CheckoutBody is returned by a successful checkout
type CheckoutBody struct {
	OrderID string             `json:"orderId"`
	Items   []models.CartEntry `json:"items"`
}

// OrderDetailsBody is returned by order lookups
type OrderDetailsBody struct {
	OrderID         string             `json:"orderId"`
	Items           []models.CartEntry `json:"items"`
	Total           string             `json:"total"`
	Tax             string             `json:"tax"`
	ShippingAddress string             `json:"shippingAddress"`
}

// Response is a synthesized API response. It is a plain value; copies are independent.
type Response struct {
	Status int
	Body   any
}

// OK returns true for 2xx statuses
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// JSON returns the serialized body
func (r Response) JSON() ([]byte, error) {
	return json.Marshal(r.Body)
}

// Text returns the serialized body as a string, or "" if it cannot be encoded
func (r Response) Text() string {
	b, err := r.JSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// Decode unmarshals the serialized body into v
func (r Response) Decode(v any) error {
	b, err := r.JSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func respond(status int, body any) Response {
	return Response{Status: status, Body: body}
}

func unauthorized() Response {
	return respond(http.StatusUnauthorized, ErrorBody{Error: "Unauthorized"})
}
