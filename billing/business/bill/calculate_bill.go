package bill

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/orders"
)

// CalculateBill bills every unbilled order the table placed today. Reading the
// orders, inserting the bill and marking the orders as billed happen in one
// transaction, so an order is never counted by two bills.
func (b *business) CalculateBill(ctx context.Context, tableID int32) (*model.Bill, error) {
	billDate := b.now()
	windowStart, windowEnd := BillWindow(billDate)

	var result *model.Bill
	err := b.ledger.WithinTx(ctx, func(q domain.TxQueries) error {
		rows, err := q.Orders.ListUnbilledOrderLines(ctx, orders.ListUnbilledOrderLinesParams{
			TableID:     tableID,
			WindowStart: pgtype.Timestamptz{Time: windowStart, Valid: true},
			WindowEnd:   pgtype.Timestamptz{Time: windowEnd, Valid: true},
		})
		if err != nil {
			b.logger.Error("failed to load orders for bill", "table_id", tableID, "error", err)
			return domain.StoreError(err, "load orders")
		}

		lines := make([]model.BillLine, len(rows))
		orderIDs := make([]int64, len(rows))
		prices := make([]int64, len(rows))
		for i, row := range rows {
			lines[i] = model.BillLine{Name: row.Name, Quantity: row.Quantity, PriceCents: row.PriceCents}
			orderIDs[i] = row.OrderID
			prices[i] = row.PriceCents
		}
		amounts := ComputeAmounts(lines)

		dbBill, err := q.Bills.CreateBill(ctx, bills.CreateBillParams{
			BillID:           NewBillID(tableID, billDate),
			BillDate:         pgtype.Timestamptz{Time: billDate, Valid: true},
			TableID:          tableID,
			TotalAmountCents: amounts.TotalCents,
			TaxAmountCents:   amounts.TaxCents,
			FinalAmountCents: amounts.FinalCents,
		})
		if err != nil {
			if domain.IsUniqueViolation(err) {
				return &errs.Error{Code: errs.AlreadyExists, Message: "bill is duplicated"}
			}
			b.logger.Error("failed to create bill", "table_id", tableID, "error", err)
			return domain.StoreError(err, "create bill")
		}

		if len(orderIDs) > 0 {
			_, err = q.Orders.AttachOrdersToBill(ctx, orders.AttachOrdersToBillParams{
				BillID:     pgtype.Text{String: dbBill.BillID, Valid: true},
				OrderIds:   orderIDs,
				PriceCents: prices,
			})
			if err != nil {
				b.logger.Error("failed to mark orders billed", "bill_id", dbBill.BillID, "error", err)
				return domain.StoreError(err, "mark orders billed")
			}
		}

		result = convertDBBillToModel(dbBill)
		result.Lines = lines
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("bill generated",
		"bill_id", result.ID,
		"table_id", tableID,
		"orders", len(result.Lines),
		"final_amount_cents", result.FinalAmountCents,
	)
	return result, nil
}

// convertDBBillToModel converts a database FinalBill to a domain model Bill
func convertDBBillToModel(dbBill bills.FinalBill) *model.Bill {
	return &model.Bill{
		ID:               dbBill.BillID,
		TableID:          dbBill.TableID,
		BillDate:         dbBill.BillDate.Time,
		TotalAmountCents: dbBill.TotalAmountCents,
		TaxAmountCents:   dbBill.TaxAmountCents,
		FinalAmountCents: dbBill.FinalAmountCents,
		Lines:            []model.BillLine{},
		CreatedAt:        dbBill.CreatedAt.Time,
	}
}
