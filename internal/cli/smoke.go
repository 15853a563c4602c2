package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/themizzi/sauceshop/internal/config"
	"github.com/themizzi/sauceshop/internal/models"
	"github.com/themizzi/sauceshop/internal/store"
)

// SmokeResult summarizes a successful smoke run
type SmokeResult struct {
	OrderID string
	Items   []models.CartEntry
	Total   string
}

// smokeClient issues JSON requests against a running server
type smokeClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *smokeClient) do(ctx context.Context, method, path string, body, out any, wantStatus int) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s: %w", method, path, err)
	}
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s %s: expected status %d, got %d: %s", method, path, wantStatus, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

// RunSmoke drives login, cart, checkout and order lookup against a running
// server and checks that the order reports the items that were checked out
func RunSmoke(ctx context.Context, cfg config.ClientConfig, httpClient *http.Client) (*SmokeResult, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &smokeClient{baseURL: cfg.BaseURL, http: httpClient}

	var login store.TokenBody
	creds := models.Credentials{Username: cfg.Username, Password: cfg.Password}
	if err := c.do(ctx, http.MethodPost, "/login", creds, &login, http.StatusOK); err != nil {
		return nil, err
	}
	if login.Token == "" {
		return nil, fmt.Errorf("login returned an empty token")
	}
	c.token = login.Token

	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products, http.StatusOK); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	var cart store.CartBody
	add := map[string]string{"id": products[0].ID}
	if err := c.do(ctx, http.MethodPost, "/cart/items", add, &cart, http.StatusOK); err != nil {
		return nil, err
	}

	info := models.CheckoutInfo{FirstName: "Smoke", LastName: "Test", PostalCode: "12345"}
	var placed store.CheckoutBody
	if err := c.do(ctx, http.MethodPost, "/checkout", info, &placed, http.StatusOK); err != nil {
		return nil, err
	}
	if placed.OrderID == "" {
		return nil, fmt.Errorf("checkout returned an empty order id")
	}

	var details store.OrderDetailsBody
	if err := c.do(ctx, http.MethodGet, "/orders/"+placed.OrderID, nil, &details, http.StatusOK); err != nil {
		return nil, err
	}
	if len(details.Items) != len(placed.Items) {
		return nil, fmt.Errorf("order %s reports %d items, checkout returned %d",
			placed.OrderID, len(details.Items), len(placed.Items))
	}

	// Leave the server-side cart empty for the next run
	if err := c.do(ctx, http.MethodDelete, "/cart/items/"+products[0].ID, nil, nil, http.StatusOK); err != nil {
		return nil, err
	}

	return &SmokeResult{
		OrderID: placed.OrderID,
		Items:   details.Items,
		Total:   details.Total,
	}, nil
}
