//go:build e2e
// +build e2e

package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/sauceshop/internal/models"
)

// apiHelper drives the storefront API through a Playwright request context
type apiHelper struct {
	t   *testing.T
	ctx playwright.APIRequestContext
}

// newAPIHelper creates an unauthenticated helper; contexts are disposed on cleanup
func newAPIHelper(t *testing.T) *apiHelper {
	t.Helper()
	h := &apiHelper{t: t}
	h.ctx = h.newContext("")
	t.Cleanup(func() {
		h.ctx.Dispose()
	})
	return h
}

func (h *apiHelper) newContext(token string) playwright.APIRequestContext {
	h.t.Helper()
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	ctx, err := pw.Request.NewContext(playwright.APIRequestNewContextOptions{
		BaseURL:          playwright.String(clientCfg.BaseURL),
		ExtraHttpHeaders: headers,
	})
	require.NoError(h.t, err, "failed to create request context")
	return ctx
}

// setToken swaps in a context that sends the bearer token
func (h *apiHelper) setToken(token string) {
	h.t.Helper()
	old := h.ctx
	h.ctx = h.newContext(token)
	old.Dispose()
}

// loginAsStandardUser logs in with the configured account and keeps the token
func (h *apiHelper) loginAsStandardUser() {
	h.t.Helper()
	resp := h.login(clientCfg.Username, clientCfg.Password)
	require.Equal(h.t, 200, resp.Status())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(h.t, resp.JSON(&body))
	require.NotEmpty(h.t, body.Token)
	h.setToken(body.Token)
}

func (h *apiHelper) post(path string, data any) playwright.APIResponse {
	h.t.Helper()
	resp, err := h.ctx.Post(path, playwright.APIRequestContextPostOptions{Data: data})
	require.NoError(h.t, err, "POST %s", path)
	return resp
}

func (h *apiHelper) get(path string) playwright.APIResponse {
	h.t.Helper()
	resp, err := h.ctx.Get(path)
	require.NoError(h.t, err, "GET %s", path)
	return resp
}

func (h *apiHelper) delete(path string) playwright.APIResponse {
	h.t.Helper()
	resp, err := h.ctx.Delete(path)
	require.NoError(h.t, err, "DELETE %s", path)
	return resp
}

func (h *apiHelper) login(username, password string) playwright.APIResponse {
	return h.post("/login", models.Credentials{Username: username, Password: password})
}

func (h *apiHelper) getProducts() playwright.APIResponse {
	return h.get("/products")
}

func (h *apiHelper) getCart() playwright.APIResponse {
	return h.get("/cart")
}

func (h *apiHelper) addToCart(productID string) playwright.APIResponse {
	return h.post("/cart/items", map[string]string{"id": productID})
}

func (h *apiHelper) removeFromCart(productID string) playwright.APIResponse {
	return h.delete("/cart/items/" + productID)
}

func (h *apiHelper) checkout(info models.CheckoutInfo) playwright.APIResponse {
	return h.post("/checkout", info)
}

func (h *apiHelper) getOrderDetails(orderID string) playwright.APIResponse {
	return h.get("/orders/" + orderID)
}

// decode reads a JSON response body into v
func decode[T any](t *testing.T, resp playwright.APIResponse) T {
	t.Helper()
	var v T
	require.NoError(t, resp.JSON(&v))
	return v
}
