//go:build e2e
// +build e2e

package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/sauceshop/internal/models"
)

type orderDetails struct {
	OrderID         string             `json:"orderId"`
	Items           []models.CartEntry `json:"items"`
	Total           string             `json:"total"`
	Tax             string             `json:"tax"`
	ShippingAddress string             `json:"shippingAddress"`
}

func checkoutInfo() models.CheckoutInfo {
	return models.CheckoutInfo{FirstName: "John", LastName: "Doe", PostalCode: "12345"}
}

// Feature: Checkout API
//
//	Scenario: Checkout with an empty cart
//	  Given I am logged in with nothing in my cart
//	  When I submit checkout
//	  Then I should be told the cart is empty
func TestCheckoutEmptyCart(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()

	resp := api.checkout(checkoutInfo())
	require.Equal(t, 400, resp.Status())
	assert.False(t, resp.Ok())
	assert.Equal(t, "Cart is empty", decode[map[string]string](t, resp)["message"])
}

//	Scenario: End-to-end checkout
//	  Given I have a product in my cart
//	  When I submit checkout
//	  Then I should receive an order id and the checked out items
//	  And the order details should report the same items
func TestE2ECheckoutProcess(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()

	products := decode[[]models.Product](t, api.getProducts())
	productID := products[0].ID
	require.True(t, api.addToCart(productID).Ok())

	resp := api.checkout(checkoutInfo())
	require.Equal(t, 200, resp.Status())

	var order struct {
		OrderID string             `json:"orderId"`
		Items   []models.CartEntry `json:"items"`
	}
	require.NoError(t, resp.JSON(&order))
	assert.True(t, strings.HasPrefix(order.OrderID, "order-"))
	assert.Contains(t, order.Items, models.CartEntry{ID: productID})

	// Changing the cart afterwards does not rewrite the placed order
	api.addToCart(products[1].ID)

	details := decode[orderDetails](t, api.getOrderDetails(order.OrderID))
	assert.Equal(t, order.OrderID, details.OrderID)
	assert.Equal(t, order.Items, details.Items)
	assert.Equal(t, products[0].Price, details.Total)
	assert.Equal(t, "Test Address", details.ShippingAddress)
}

func TestCheckoutTwiceYieldsDistinctOrders(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()
	api.addToCart("1")

	first := decode[map[string]any](t, api.checkout(checkoutInfo()))
	second := decode[map[string]any](t, api.checkout(checkoutInfo()))

	assert.NotEqual(t, first["orderId"], second["orderId"])
}
