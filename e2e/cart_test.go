//go:build e2e
// +build e2e

package e2e

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/sauceshop/internal/models"
)

type cartView struct {
	Items      []models.CartEntry `json:"items"`
	Total      string             `json:"total"`
	Tax        string             `json:"tax"`
	FinalTotal string             `json:"finalTotal"`
}

// productIDs logs the helper in and returns the catalog IDs
func productIDs(t *testing.T, api *apiHelper) []string {
	t.Helper()
	products := decode[[]models.Product](t, api.getProducts())
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// Feature: Shopping Cart API
func TestAddMultipleProducts(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()

	ids := productIDs(t, api)
	for _, id := range ids {
		resp := api.addToCart(id)
		require.Equal(t, 200, resp.Status(), "add %s", id)
	}

	cart := decode[cartView](t, api.getCart())
	require.Len(t, cart.Items, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, cart.Items[i].ID, "insertion order")
	}
}

func TestAddDuplicateProduct(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()

	first := api.addToCart("1")
	require.Equal(t, 200, first.Status())
	assert.Equal(t, []models.CartEntry{{ID: "1"}}, decode[cartView](t, first).Items)

	second := api.addToCart("1")
	require.Equal(t, 400, second.Status())
	assert.Equal(t, "Product already in cart", decode[map[string]string](t, second)["message"])
}

func TestRemoveAllProducts(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()

	ids := productIDs(t, api)
	for _, id := range ids {
		api.addToCart(id)
	}
	for _, id := range ids {
		require.True(t, api.removeFromCart(id).Ok(), "remove %s", id)
	}

	cart := decode[cartView](t, api.getCart())
	assert.Empty(t, cart.Items)
}

func TestCartTotalCalculation(t *testing.T) {
	api := newAPIHelper(t)
	api.loginAsStandardUser()

	products := decode[[]models.Product](t, api.getProducts())

	var expected float64
	for _, p := range products {
		api.addToCart(p.ID)
		price, err := strconv.ParseFloat(p.Price, 64)
		require.NoError(t, err)
		expected += price
	}

	cart := decode[cartView](t, api.getCart())
	parse := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		return v
	}
	assert.InDelta(t, expected, parse(cart.Total), 0.005)
	assert.InDelta(t, expected*0.08, parse(cart.Tax), 0.005)
	assert.InDelta(t, expected*1.08, parse(cart.FinalTotal), 0.01)
}

// Each login opens its own session; carts do not carry over to a later login
func TestNewSessionStartsEmpty(t *testing.T) {
	first := newAPIHelper(t)
	first.loginAsStandardUser()
	first.addToCart("1")

	second := newAPIHelper(t)
	second.loginAsStandardUser()

	cart := decode[cartView](t, second.getCart())
	assert.Empty(t, cart.Items)
}
