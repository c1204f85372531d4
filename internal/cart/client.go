package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"namo_back_end/internal/models"
)

// APIClient places orders against the storefront backend.
type APIClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{BaseURL: baseURL, HTTP: http.DefaultClient}
}

func (c *APIClient) PlaceOrder(ctx context.Context, order models.Order) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		OrderID string `json:"orderId"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		if payload.Error != "" {
			return "", fmt.Errorf("place order: %s", payload.Error)
		}
		return "", fmt.Errorf("place order: unexpected status %d", resp.StatusCode)
	}
	return payload.OrderID, nil
}
