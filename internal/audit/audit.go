// Package audit appends the driver's order and bill outcomes to a JSON lines file.
package audit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Logger struct {
	log    *slog.Logger
	closer io.Closer
}

// Open appends to the audit file at path, creating it when missing.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	l := New(f)
	l.closer = f
	return l, nil
}

func New(w io.Writer) *Logger {
	return &Logger{
		log: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (l *Logger) OrderPlaced(tableID, menuID, quantity int32) {
	l.log.Info("order placed", "action", "place_order", "table_id", tableID, "menu_id", menuID, "quantity", quantity)
}

func (l *Logger) OrderRejected(tableID, menuID int32) {
	l.log.Warn("failed order attempt: item unavailable", "action", "place_order", "table_id", tableID, "menu_id", menuID)
}

func (l *Logger) BillGenerated(billID string, tableID int32, finalCents int64) {
	l.log.Info("bill generated", "action", "calculate_bill", "bill_id", billID, "table_id", tableID, "final_amount_cents", finalCents)
}

func (l *Logger) ReceiptArchived(billID, location string) {
	l.log.Info("receipt archived", "action", "archive_receipt", "bill_id", billID, "location", location)
}

func (l *Logger) Failed(action string, tableID int32, err error) {
	l.log.Error("request failed", "action", action, "table_id", tableID, "error", err.Error())
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
