// Package apiclient calls the billing service over HTTP on behalf of the
// tablebill driver.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"encore.app/billing/model"
)

const IdempotencyHeader = "X-Idempotency-Key"

// APIError is an error response from the billing service.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("billing api: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Retryable reports whether the same request may be sent again with the same
// idempotency key.
func (e *APIError) Retryable() bool {
	return e.Status >= http.StatusInternalServerError || e.Code == "aborted"
}

type OrderResult struct {
	TableID  int32  `json:"table_id"`
	MenuID   int32  `json:"menu_id"`
	Quantity int32  `json:"quantity"`
	Placed   bool   `json:"placed"`
	Message  string `json:"message"`
}

type availability struct {
	MenuID    int32 `json:"menu_id"`
	Available bool  `json:"available"`
}

type billEnvelope struct {
	Bill model.Bill `json:"bill"`
}

type Client struct {
	baseURL    string
	http       *http.Client
	retries    int
	retryDelay time.Duration
	newKey     func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetries resends failed requests up to n more times, waiting delay between attempts.
func WithRetries(n int, delay time.Duration) Option {
	return func(c *Client) {
		c.retries = n
		c.retryDelay = delay
	}
}

// WithKeyFunc replaces the idempotency key generator.
func WithKeyFunc(fn func() string) Option {
	return func(c *Client) { c.newKey = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		newKey:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CheckAvailability(ctx context.Context, menuID int32) (bool, error) {
	var out availability
	path := "/v1/menu/" + strconv.Itoa(int(menuID)) + "/availability"
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

func (c *Client) PlaceOrder(ctx context.Context, tableID, menuID, quantity int32) (*OrderResult, error) {
	body := map[string]int32{"menu_id": menuID, "quantity": quantity}
	var out OrderResult
	path := "/v1/tables/" + strconv.Itoa(int(tableID)) + "/orders"
	if err := c.do(ctx, http.MethodPost, path, body, c.newKey(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CalculateBill(ctx context.Context, tableID int32) (*model.Bill, error) {
	var out billEnvelope
	path := "/v1/tables/" + strconv.Itoa(int(tableID)) + "/bill"
	if err := c.do(ctx, http.MethodPost, path, struct{}{}, c.newKey(), &out); err != nil {
		return nil, err
	}
	return &out.Bill, nil
}

func (c *Client) GetBill(ctx context.Context, billID string) (*model.Bill, error) {
	var out billEnvelope
	if err := c.do(ctx, http.MethodGet, "/v1/bills/"+url.PathEscape(billID), nil, "", &out); err != nil {
		return nil, err
	}
	return &out.Bill, nil
}

// do sends one logical request. Every attempt carries the same idempotency
// key, so a retried order or bill is applied at most once.
func (c *Client) do(ctx context.Context, method, path string, in any, key string, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(lastErr, ctx.Err())
			case <-time.After(c.retryDelay):
			}
		}

		lastErr = c.send(ctx, method, path, payload, key, out)
		if lastErr == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && !apiErr.Retryable() {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, key string, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Code == "" {
			apiErr.Code = "unknown"
			apiErr.Message = string(bytes.TrimSpace(raw))
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
