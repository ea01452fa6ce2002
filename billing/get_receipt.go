package billing

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/receipt"
)

type ReceiptResponse struct {
	BillID  string `json:"bill_id"`
	Receipt string `json:"receipt"`
}

// GetReceipt renders a stored bill as the printable fixed-width receipt.
//
//encore:api public path=/v1/bills/:billID/receipt method=GET
func (s *Service) GetReceipt(ctx context.Context, billID string) (*ReceiptResponse, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	result, err := s.business.GetBill(ctx, billID)
	if err != nil {
		rlog.Error("failed to get bill for receipt", "error", err, "bill_id", billID)
		return nil, err
	}

	var sb strings.Builder
	if err := receipt.Render(&sb, receipt.FromBill(restaurantName, result)); err != nil {
		rlog.Error("failed to render receipt", "error", err, "bill_id", billID)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to render receipt"}
	}

	return &ReceiptResponse{
		BillID:  result.ID,
		Receipt: sb.String(),
	}, nil
}
