package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method string
	Path   string
	Key    string
	Body   map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recorded
	handler  func(w http.ResponseWriter, r *http.Request, attempt int)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recorded{Method: r.Method, Path: r.URL.Path, Key: r.Header.Get(IdempotencyHeader)}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, rec)
	attempt := len(f.requests)
	f.mu.Unlock()
	f.handler(w, r, attempt)
}

func newFakeAPI(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, attempt int)) (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{handler: handler}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func fixedKey() string { return "key-1" }

func TestPlaceOrder(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, `{"table_id":12,"menu_id":5,"quantity":2,"placed":true,"message":"Order placed successfully for Table 12."}`)
	})
	c := New(srv.URL, WithKeyFunc(fixedKey))

	res, err := c.PlaceOrder(context.Background(), 12, 5, 2)

	require.NoError(t, err)
	assert.True(t, res.Placed)
	assert.Equal(t, "Order placed successfully for Table 12.", res.Message)
	require.Len(t, api.requests, 1)
	assert.Equal(t, http.MethodPost, api.requests[0].Method)
	assert.Equal(t, "/v1/tables/12/orders", api.requests[0].Path)
	assert.Equal(t, "key-1", api.requests[0].Key)
	assert.Equal(t, map[string]any{"menu_id": float64(5), "quantity": float64(2)}, api.requests[0].Body)
}

func TestPlaceOrder_RetriesWithSameKey(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		switch attempt {
		case 1:
			writeJSON(w, http.StatusServiceUnavailable, `{"code":"unavailable","message":"data store unavailable"}`)
		case 2:
			writeJSON(w, http.StatusConflict, `{"code":"aborted","message":"request is already being processed"}`)
		default:
			writeJSON(w, http.StatusOK, `{"table_id":12,"menu_id":5,"quantity":2,"placed":true}`)
		}
	})
	keys := 0
	c := New(srv.URL, WithRetries(2, 0), WithKeyFunc(func() string {
		keys++
		return "key-retry"
	}))

	res, err := c.PlaceOrder(context.Background(), 12, 5, 2)

	require.NoError(t, err)
	assert.True(t, res.Placed)
	require.Len(t, api.requests, 3)
	for _, req := range api.requests {
		assert.Equal(t, "key-retry", req.Key)
	}
	assert.Equal(t, 1, keys, "one key per logical request")
}

func TestPlaceOrder_GivesUpAfterRetries(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusServiceUnavailable, `{"code":"unavailable","message":"data store unavailable"}`)
	})
	c := New(srv.URL, WithRetries(1, 0), WithKeyFunc(fixedKey))

	_, err := c.PlaceOrder(context.Background(), 12, 5, 2)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "unavailable", apiErr.Code)
	assert.Len(t, api.requests, 2)
}

func TestPlaceOrder_ClientErrorNotRetried(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusBadRequest, `{"code":"invalid_argument","message":"Quantity must be greater than 0"}`)
	})
	c := New(srv.URL, WithRetries(3, 0), WithKeyFunc(fixedKey))

	_, err := c.PlaceOrder(context.Background(), 12, 5, 0)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid_argument", apiErr.Code)
	assert.False(t, apiErr.Retryable())
	assert.Len(t, api.requests, 1)
}

func TestCalculateBill(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, `{"bill":{"bill_id":"Bill_12_1","table_id":12,"bill_date":"2026-10-19T20:15:30Z",
			"total_amount_cents":3500,"tax_amount_cents":350,"final_amount_cents":3850,
			"lines":[{"name":"Butter Naan","quantity":2,"price_cents":1000},{"name":"Dal Makhani","quantity":1,"price_cents":1500}]}}`)
	})
	c := New(srv.URL, WithKeyFunc(fixedKey))

	bill, err := c.CalculateBill(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, "Bill_12_1", bill.ID)
	assert.Equal(t, int64(3850), bill.FinalAmountCents)
	require.Len(t, bill.Lines, 2)
	assert.Equal(t, int64(2000), bill.Lines[0].TotalCents())
	assert.Equal(t, "/v1/tables/12/bill", api.requests[0].Path)
	assert.Equal(t, "key-1", api.requests[0].Key)
}

func TestGetBill_NotFound(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusNotFound, `{"code":"not_found","message":"bill not found"}`)
	})
	c := New(srv.URL, WithRetries(2, 0))

	_, err := c.GetBill(context.Background(), "Bill_12_404")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "bill not found", apiErr.Message)
	require.Len(t, api.requests, 1)
	assert.Equal(t, http.MethodGet, api.requests[0].Method)
	assert.Empty(t, api.requests[0].Key, "reads carry no idempotency key")
}

func TestCheckAvailability(t *testing.T) {
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		writeJSON(w, http.StatusOK, `{"menu_id":4,"available":false}`)
	})
	c := New(srv.URL)

	available, err := c.CheckAvailability(context.Background(), 4)

	require.NoError(t, err)
	assert.False(t, available)
	assert.Equal(t, "/v1/menu/4/availability", api.requests[0].Path)
}

func TestNonJSONErrorBody(t *testing.T) {
	_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request, attempt int) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	})
	c := New(srv.URL)

	_, err := c.GetBill(context.Background(), "Bill_1_1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "unknown", apiErr.Code)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.True(t, apiErr.Retryable())
}
