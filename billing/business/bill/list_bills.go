package bill

import (
	"context"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/bills"
)

// ListBills returns a page of the table's bills, newest first, and the total
// number of bills the table has. Lines are not loaded.
func (b *business) ListBills(ctx context.Context, tableID, limit, offset int32) ([]*model.Bill, int64, error) {
	dbBills, err := b.billRepo.ListBillsByTable(ctx, bills.ListBillsByTableParams{
		TableID: tableID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		b.logger.Error("failed to list bills", "table_id", tableID, "error", err)
		return nil, 0, domain.StoreError(err, "list bills")
	}

	totalCount, err := b.billRepo.CountBillsByTable(ctx, tableID)
	if err != nil {
		b.logger.Error("failed to count bills", "table_id", tableID, "error", err)
		return nil, 0, domain.StoreError(err, "count bills")
	}

	billList := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		billList[i] = convertDBBillToModel(dbBill)
	}

	return billList, totalCount, nil
}
