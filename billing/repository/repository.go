package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/menus"
	"encore.app/billing/repository/orders"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Menus  menus.Querier
	Orders orders.Querier
	Bills  bills.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Menus:  menus.New(db),
		Orders: orders.New(db),
		Bills:  bills.New(db),
	}
}
