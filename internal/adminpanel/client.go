// Package adminpanel drives the product-catalog admin API the way the
// management UI does: list, form-bound create/edit, delete with
// confirmation. The Controller mirrors the page's state machine so its
// behavior can be exercised without a browser.
package adminpanel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"biovibe-backend/internal/catalog"
	"biovibe-backend/internal/models"
)

// APIError is a failure the server reported in the response envelope, as
// opposed to a transport fault.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", res.StatusCode)
		}
		return &APIError{Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Create(ctx context.Context, in catalog.ProductInput) error {
	return c.do(ctx, http.MethodPost, "/api/products", in, nil)
}

func (c *Client) Update(ctx context.Context, id uint, in catalog.ProductInput) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d", id), in, nil)
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}
