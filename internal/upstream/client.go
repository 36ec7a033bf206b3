package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/solarline/pos-gateway/internal/auth"
	"github.com/solarline/pos-gateway/internal/config"
	"github.com/solarline/pos-gateway/pkg/apperror"
)

// Client is the typed client for the POS REST API. Each resource hangs off
// the shared core, which injects the session's token at dispatch time and
// clears the session's auth state on the first 401.
type Client struct {
	baseURL string
	http    *http.Client

	Auth          *AuthAPI
	Products      *ProductsAPI
	Customers     *CustomersAPI
	Resellers     *ResellersAPI
	Transactions  *TransactionsAPI
	Expenses      *ExpensesAPI
	Invoices      *InvoicesAPI
	Receipts      *ReceiptsAPI
	Notifications *NotificationsAPI
	Collections   *CollectionsAPI
	Stock         *StockAPI
	Business      *BusinessAPI
	Categories    *CategoriesAPI
}

// New creates an upstream client. The client carries no cookie jar: the
// Django login also sets a sessionid cookie, and a process-wide jar would
// replay one user's cookie on every other session's requests. Token auth
// is the only credential forwarded.
func New(cfg config.UpstreamConfig) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	c.Auth = &AuthAPI{c}
	c.Products = &ProductsAPI{c}
	c.Customers = &CustomersAPI{c}
	c.Resellers = &ResellersAPI{c}
	c.Transactions = &TransactionsAPI{c}
	c.Expenses = &ExpensesAPI{c}
	c.Invoices = &InvoicesAPI{c}
	c.Receipts = &ReceiptsAPI{c}
	c.Notifications = &NotificationsAPI{c}
	c.Collections = &CollectionsAPI{c}
	c.Stock = &StockAPI{c}
	c.Business = &BusinessAPI{c}
	c.Categories = &CategoriesAPI{c}
	return c
}

// do performs one API call. The Authorization header is read from the
// request's auth state on every call, never cached across calls.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.raw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// raw performs one API call and returns the response body verbatim.
func (c *Client) raw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := auth.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.ErrUpstream
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrUpstream
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if state := auth.StateFromContext(ctx); state != nil {
			state.Clear()
		}
		return nil, apperror.ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		return nil, apperror.FromUpstream(resp.StatusCode, data, "The POS service rejected the request")
	}
	return data, nil
}

// list fetches a collection, accepting either a paginated
// {"results": [...]} envelope or a bare array.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.raw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](data)
}

func decodeList[T any](data []byte) ([]T, error) {
	enveloped := false
	var env struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &env); err == nil {
		enveloped = true
		if env.Results != nil {
			data = env.Results
		}
	}

	var items []T
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		if enveloped {
			// Envelope without a usable results array: treat as empty.
			return nil, nil
		}
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func create[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func update[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func patch[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodPatch, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func del(ctx context.Context, c *Client, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
