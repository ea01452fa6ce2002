package model

// Availability codes stored in menu_card.available.
const (
	AvailableYes = "Y"
	AvailableNo  = "N"
)

type MenuItem struct {
	ID         int32
	Name       string
	PriceCents int64
	Available  bool
}
