package bill

import (
	"context"
	"time"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/orders"
)

type Business interface {
	CalculateBill(ctx context.Context, tableID int32) (*model.Bill, error)
	GetBill(ctx context.Context, billID string) (*model.Bill, error)
	ListBills(ctx context.Context, tableID, limit, offset int32) ([]*model.Bill, int64, error)
}

// BillBusiness computes and persists table bills
type business struct {
	billRepo  bills.Querier
	orderRepo orders.Querier
	ledger    domain.Ledger
	logger    domain.Logger
	now       domain.Clock
}

// NewBillBusiness creates a new bill business layer
func NewBillBusiness(
	billRepo bills.Querier,
	orderRepo orders.Querier,
	ledger domain.Ledger,
	logger domain.Logger,
) Business {
	return &business{
		billRepo:  billRepo,
		orderRepo: orderRepo,
		ledger:    ledger,
		logger:    logger,
		now:       time.Now,
	}
}
