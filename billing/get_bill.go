package billing

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/bills/:billID method=GET
func (s *Service) GetBill(ctx context.Context, billID string) (*BillResponse, error) {
	billID = strings.TrimSpace(billID)
	if billID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	result, err := s.business.GetBill(ctx, billID)
	if err != nil {
		rlog.Error("failed to get bill", "error", err, "bill_id", billID)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}
