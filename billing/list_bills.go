package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ListBillsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListBillsResponse struct {
	TableID    int32        `json:"table_id"`
	Bills      []model.Bill `json:"bills"`
	TotalCount int64        `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// ListTableBills returns a table's bills, newest first.
//
//encore:api public path=/v1/tables/:tableID/bills method=GET
func (s *Service) ListTableBills(ctx context.Context, tableID int, req *ListBillsRequest) (*ListBillsResponse, error) {
	if tableID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid table ID"}
	}
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	if req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	bills, totalCount, err := s.business.ListBills(ctx, int32(tableID), int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list bills", "error", err, "table_id", tableID)
		return nil, err
	}

	response := &ListBillsResponse{
		TableID:    int32(tableID),
		Bills:      make([]model.Bill, len(bills)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, bill := range bills {
		response.Bills[i] = *bill
	}

	return response, nil
}
