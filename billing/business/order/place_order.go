package order

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/billing/domain"
	"encore.app/billing/repository/orders"
)

// PlaceOrder records an order for the table when the item is available. An
// unavailable item is not an error: it is logged and reported as false.
func (b *business) PlaceOrder(ctx context.Context, tableID, menuID, quantity int32) (bool, error) {
	available, err := b.IsAvailable(ctx, menuID)
	if err != nil {
		return false, err
	}
	if !available {
		b.logger.Warn("order rejected: item unavailable", "table_id", tableID, "menu_id", menuID)
		return false, nil
	}

	placed, err := b.orderRepo.CreateOrder(ctx, orders.CreateOrderParams{
		TableID:        tableID,
		MenuID:         menuID,
		Quantity:       quantity,
		OrderTimestamp: pgtype.Timestamptz{Time: b.now(), Valid: true},
	})
	if err != nil {
		b.logger.Error("failed to place order", "table_id", tableID, "menu_id", menuID, "error", err)
		return false, domain.StoreError(err, "place order")
	}

	b.logger.Info("order placed",
		"order_id", placed.OrderID,
		"table_id", tableID,
		"menu_id", menuID,
		"quantity", quantity,
	)
	return true, nil
}
