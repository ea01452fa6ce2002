package billing

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"

	"encore.app/billing/workflow"
)

type PlaceOrderRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	MenuID   int32 `json:"menu_id" validate:"required,gt=0"`
	Quantity int32 `json:"quantity" validate:"required,gt=0,lte=100"`
}

type PlaceOrderResponse struct {
	TableID  int32  `json:"table_id"`
	MenuID   int32  `json:"menu_id"`
	Quantity int32  `json:"quantity"`
	Placed   bool   `json:"placed"`
	Message  string `json:"message"`
}

// PlaceOrder records an order for a table when the menu item is available.
// An unavailable item is not an error: the response reports placed=false.
//
//encore:api public path=/v1/tables/:tableID/orders method=POST tag:idempotency
func (s *Service) PlaceOrder(ctx context.Context, tableID int, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	if tableID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid table ID"}
	}

	placed, err := s.orders.PlaceOrder(ctx, int32(tableID), req.MenuID, req.Quantity)
	if err != nil {
		rlog.Error("failed to place order", "error", err, "table_id", tableID, "menu_id", req.MenuID)
		return nil, err
	}

	resp := &PlaceOrderResponse{
		TableID:  int32(tableID),
		MenuID:   req.MenuID,
		Quantity: req.Quantity,
		Placed:   placed,
	}
	if !placed {
		resp.Message = "Menu item is not available."
		return resp, nil
	}
	resp.Message = fmt.Sprintf("Order placed successfully for Table %d.", tableID)

	signal := workflow.OrderPlacedSignal{MenuID: req.MenuID, Quantity: req.Quantity}
	runAsync("order placed", int32(tableID), func(ctx context.Context) error {
		return s.recordInSession(ctx, int32(tableID), signal, time.Now())
	})

	return resp, nil
}

// Validate implements validation for PlaceOrderRequest using go-playground/validator
func (r *PlaceOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// recordInSession signals the table's session for the day, starting it first
// when this is the table's first order.
func (s *Service) recordInSession(ctx context.Context, tableID int32, signal workflow.OrderPlacedSignal, now time.Time) error {
	workflowID := workflow.SessionWorkflowID(tableID, now)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}
	params := workflow.TableSessionParams{
		TableID:  tableID,
		ClosesAt: workflow.ClosingTime(now),
	}

	_, err := s.temporal.SignalWithStartWorkflow(ctx, workflowID, workflow.OrderPlacedSignalName, signal, options, workflow.TableSession, params)
	if err != nil {
		return fmt.Errorf("signal with start %s: %w", workflowID, err)
	}
	return nil
}
