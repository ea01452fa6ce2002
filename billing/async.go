package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const sessionSignalTimeout = 5 * time.Second

// runAsync is swapped for a synchronous runner in tests.
var runAsync = signalInBackground

// signalInBackground runs a table session operation in its own goroutine, so a
// slow or unreachable Temporal cluster never delays an order or bill response.
func signalInBackground(op string, tableID int32, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sessionSignalTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("table session operation failed", "op", op, "table_id", tableID, "error", err)
			return
		}
		rlog.Debug("table session operation done", "op", op, "table_id", tableID)
	}()
}
