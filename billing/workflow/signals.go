package workflow

const (
	// Signal names
	OrderPlacedSignalName = "order-placed"
	CloseTableSignalName  = "close-table"
)

// OrderPlacedSignal tells the session that the table has an unbilled order.
type OrderPlacedSignal struct {
	MenuID   int32 `json:"menu_id"`
	Quantity int32 `json:"quantity"`
}

// CloseTableSignal ends the session after the table was billed through the API.
type CloseTableSignal struct {
	BillID string `json:"bill_id"`
	Reason string `json:"reason"`
}
