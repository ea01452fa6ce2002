package model

import (
	"time"
)

type Bill struct {
	ID               string     `json:"bill_id"`
	TableID          int32      `json:"table_id"`
	BillDate         time.Time  `json:"bill_date"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	TaxAmountCents   int64      `json:"tax_amount_cents"`
	FinalAmountCents int64      `json:"final_amount_cents"`
	Lines            []BillLine `json:"lines"`
	CreatedAt        time.Time  `json:"created_at"`
}

// BillLine is one order as it appears on a bill: the menu name, how many were
// ordered and the unit price at billing time.
type BillLine struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

func (l BillLine) TotalCents() int64 {
	return int64(l.Quantity) * l.PriceCents
}
