package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
)

// GetBill returns a stored bill with the orders it covered
func (b *business) GetBill(ctx context.Context, billID string) (*model.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, billID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		b.logger.Error("failed to get bill", "bill_id", billID, "error", err)
		return nil, domain.StoreError(err, "get bill")
	}

	rows, err := b.orderRepo.ListOrderLinesByBill(ctx, pgtype.Text{String: billID, Valid: true})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		b.logger.Error("failed to get bill lines", "bill_id", billID, "error", err)
		return nil, domain.StoreError(err, "get bill lines")
	}

	bill := convertDBBillToModel(dbBill)
	for _, row := range rows {
		bill.Lines = append(bill.Lines, model.BillLine{
			Name:       row.Name,
			Quantity:   row.Quantity,
			PriceCents: row.PriceCents,
		})
	}

	return bill, nil
}
