package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/internal/archive"
	"encore.app/internal/config"
)

const billJSON = `{"bill":{"bill_id":"Bill_12_1792440930123456","table_id":12,"bill_date":"2026-10-19T20:15:30Z",
"total_amount_cents":%d,"tax_amount_cents":%d,"final_amount_cents":%d,"lines":%s}}`

type fakeBilling struct {
	mu        sync.Mutex
	available map[int32]bool
	paths     []string
	keys      []string
}

func (f *fakeBilling) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.paths = append(f.paths, r.Method+" "+r.URL.Path)
	f.keys = append(f.keys, r.Header.Get("X-Idempotency-Key"))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/orders"):
		var body struct {
			MenuID   int32 `json:"menu_id"`
			Quantity int32 `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		placed := f.available[body.MenuID]
		fmt.Fprintf(w, `{"table_id":12,"menu_id":%d,"quantity":%d,"placed":%t}`, body.MenuID, body.Quantity, placed)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/bill"):
		fmt.Fprintf(w, billJSON, 3500, 350, 3850,
			`[{"name":"Butter Naan","quantity":2,"price_cents":1000},{"name":"Dal Makhani","quantity":1,"price_cents":1500}]`)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/bills/"):
		fmt.Fprintf(w, billJSON, 0, 0, 0, `[]`)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/menu/"):
		fmt.Fprint(w, `{"menu_id":5,"available":true}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":"not_found","message":"endpoint not found"}`)
	}
}

type putRecorder struct {
	keys   []string
	bodies []string
}

func (p *putRecorder) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	raw, _ := io.ReadAll(params.Body)
	p.keys = append(p.keys, aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key))
	p.bodies = append(p.bodies, string(raw))
	return &s3.PutObjectOutput{}, nil
}

type harness struct {
	api      *fakeBilling
	cfgFile  string
	auditLog string
	puts     *putRecorder
	last     *app
}

func newHarness(t *testing.T, available map[int32]bool, extraConfig string) *harness {
	t.Helper()
	api := &fakeBilling{available: available}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	auditLog := filepath.Join(dir, "order_log.txt")
	cfgFile := filepath.Join(dir, "tablebill.yaml")
	yaml := fmt.Sprintf(`api_url: %s
table_id: 12
retries: 0
audit_log: %s
orders:
  - menu_id: 5
    quantity: 2
  - menu_id: 6
    quantity: 3
%s`, srv.URL, auditLog, extraConfig)
	require.NoError(t, os.WriteFile(cfgFile, []byte(yaml), 0o600))

	return &harness{api: api, cfgFile: cfgFile, auditLog: auditLog, puts: &putRecorder{}}
}

func (h *harness) run(args ...string) (string, error) {
	archiver := func(ctx context.Context, cfg config.Archive) (*archive.Archiver, error) {
		return archive.NewArchiver(archive.NewS3WriterFactoryWithClient(h.puts), cfg), nil
	}
	root, a := newRootCommand(viper.New(), archiver)
	h.last = a
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", h.cfgFile}, args...))
	err := a.execute(root)
	return out.String(), err
}

func (h *harness) auditEntries(t *testing.T) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(h.auditLog)
	require.NoError(t, err)
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		entries = append(entries, m)
	}
	return entries
}

func TestSession_AllOrdersPlaced(t *testing.T) {
	h := newHarness(t, map[int32]bool{5: true, 6: true}, "")

	out, err := h.run("session")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Order placed successfully for Table 12.\n"))
	assert.Contains(t, out, "Welcome to Hotel Annapurna")
	assert.Contains(t, out, "recpt: Bill_12_1792440930123456")
	assert.Contains(t, out, "|Final amount      =        38.50          |")
	assert.Equal(t, []string{
		"POST /v1/tables/12/orders",
		"POST /v1/tables/12/orders",
		"POST /v1/tables/12/bill",
	}, h.api.paths)
	for _, key := range h.api.keys {
		assert.NotEmpty(t, key)
	}
	assert.NotEqual(t, h.api.keys[0], h.api.keys[1], "each order has its own idempotency key")

	entries := h.auditEntries(t)
	require.Len(t, entries, 3)
	assert.Equal(t, "order placed", entries[0]["msg"])
	assert.Equal(t, "bill generated", entries[2]["msg"])
	assert.Equal(t, float64(3850), entries[2]["final_amount_cents"])
}

func TestSession_OneOrderUnavailable(t *testing.T) {
	h := newHarness(t, map[int32]bool{5: true}, "")

	out, err := h.run("session")

	require.NoError(t, err)
	assert.Contains(t, out, "Order placed successfully for Table 12.\nMenu item is not available.\n")
	assert.Contains(t, out, "Butter Naan")
	assert.Len(t, h.api.paths, 3)

	entries := h.auditEntries(t)
	require.Len(t, entries, 3)
	assert.Equal(t, "WARN", entries[1]["level"])
}

func TestSession_NothingAvailable(t *testing.T) {
	h := newHarness(t, map[int32]bool{}, "")

	out, err := h.run("session")

	require.ErrorIs(t, err, errNothingPlaced)
	assert.Equal(t, "Menu item is not available.\nMenu item is not available.\nThere is unavailability of ordered items.\n", out)
	assert.NotContains(t, h.api.paths, "POST /v1/tables/12/bill")
	require.NotNil(t, h.last.audit)
	assert.ErrorIs(t, h.last.audit.Close(), os.ErrClosed, "audit log closed after a failed session")
}

func TestAuditLogClosedOnEveryExit(t *testing.T) {
	h := newHarness(t, map[int32]bool{5: true}, "")

	_, err := h.run("bill")
	require.NoError(t, err)
	require.NotNil(t, h.last.audit)
	assert.ErrorIs(t, h.last.audit.Close(), os.ErrClosed)

	_, err = h.run("available", "abc")
	require.Error(t, err)
	require.NotNil(t, h.last.audit)
	assert.ErrorIs(t, h.last.audit.Close(), os.ErrClosed)
}

func TestReceipt_ArchivesToS3(t *testing.T) {
	h := newHarness(t, nil, "archive:\n  bucket: receipts-bucket\n  region: ap-south-1\n")

	out, err := h.run("receipt", "Bill_12_1792440930123456")

	require.NoError(t, err)
	assert.Contains(t, out, "|Final amount      =         0.00          |")
	require.Equal(t, []string{"receipts-bucket/receipts/Bill_12_1792440930123456.txt"}, h.puts.keys)
	assert.Equal(t, out, h.puts.bodies[0])

	entries := h.auditEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "receipt archived", entries[0]["msg"])
	assert.Equal(t, "s3://receipts-bucket/receipts/Bill_12_1792440930123456.txt", entries[0]["location"])
}

func TestOrderAndAvailableCommands(t *testing.T) {
	h := newHarness(t, map[int32]bool{5: true}, "")

	out, err := h.run("available", "5")
	require.NoError(t, err)
	assert.Equal(t, "Menu item 5 is available.\n", out)

	out, err = h.run("order", "--menu-id", "5", "--quantity", "2")
	require.NoError(t, err)
	assert.Equal(t, "Order placed successfully for Table 12.\n", out)

	_, err = h.run("available", "abc")
	assert.Error(t, err)
}

func TestInvalidTableIDFlag(t *testing.T) {
	h := newHarness(t, nil, "")

	_, err := h.run("--table-id", "0", "session")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TableID")
	assert.Empty(t, h.api.paths)
}
