package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/api/serviceerror"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type CalculateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

// CalculateBill bills every order the table placed today that has not been
// billed yet, and closes the table's session.
//
//encore:api public path=/v1/tables/:tableID/bill method=POST tag:idempotency
func (s *Service) CalculateBill(ctx context.Context, tableID int, req *CalculateBillRequest) (*BillResponse, error) {
	if tableID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid table ID"}
	}

	result, err := s.business.CalculateBill(ctx, int32(tableID))
	if err != nil {
		rlog.Error("failed to calculate bill", "error", err, "table_id", tableID)
		return nil, err
	}

	signal := workflow.CloseTableSignal{BillID: result.ID, Reason: "billed"}
	runAsync("close table", int32(tableID), func(ctx context.Context) error {
		return s.closeSession(ctx, int32(tableID), signal, result.BillDate)
	})

	return &BillResponse{
		Bill: *result,
	}, nil
}

// closeSession tells the day's session that the table has been billed. Tables
// billed without any order through the API have no session to close.
func (s *Service) closeSession(ctx context.Context, tableID int32, signal workflow.CloseTableSignal, billedAt time.Time) error {
	workflowID := workflow.SessionWorkflowID(tableID, billedAt)

	err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.CloseTableSignalName, signal)
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			rlog.Debug("no open table session", "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("signal %s: %w", workflowID, err)
	}
	return nil
}
