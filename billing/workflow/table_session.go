package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TableSessionParams contains parameters for starting a table session
type TableSessionParams struct {
	TableID  int32     `json:"table_id"`
	ClosesAt time.Time `json:"closes_at"`
}

// SessionWorkflowID is the workflow id of the table's session on the given day.
func SessionWorkflowID(tableID int32, day time.Time) string {
	return fmt.Sprintf("table-%d-%s", tableID, day.Format("20060102"))
}

// ClosingTime is when an unclosed session bills itself: one minute before
// midnight, so the bill still falls inside the day's bill window.
func ClosingTime(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, day.Location()).Add(-time.Minute)
}

// TableSession follows one table through one day. It counts orders as they are
// signalled, finishes when the table is billed through the API and otherwise
// bills the outstanding orders itself at closing time.
func TableSession(ctx workflow.Context, params TableSessionParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting table session", "tableID", params.TableID, "closesAt", params.ClosesAt)

	orderPlacedCh := workflow.GetSignalChannel(ctx, OrderPlacedSignalName)
	closeTableCh := workflow.GetSignalChannel(ctx, CloseTableSignalName)

	pending := 0
	remaining := params.ClosesAt.Sub(workflow.Now(ctx))
	if remaining <= 0 {
		var late OrderPlacedSignal
		for orderPlacedCh.ReceiveAsync(&late) {
			pending++
		}
		logger.Warn("Session started after closing time", "tableID", params.TableID, "pendingOrders", pending)
		return billAtClose(ctx, params.TableID, pending)
	}

	timer := workflow.NewTimer(ctx, remaining)

	var sessionErr error
	closed := false

	for !closed {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(orderPlacedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal OrderPlacedSignal
			c.Receive(ctx, &signal)
			pending++
			logger.Info("Order recorded for session", "tableID", params.TableID, "menuID", signal.MenuID, "pendingOrders", pending)
		})

		selector.AddReceive(closeTableCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CloseTableSignal
			c.Receive(ctx, &signal)
			logger.Info("Table billed, closing session", "tableID", params.TableID, "billID", signal.BillID, "reason", signal.Reason)
			closed = true
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Closing time reached", "tableID", params.TableID, "pendingOrders", pending)
			sessionErr = billAtClose(ctx, params.TableID, pending)
			closed = true
		})

		selector.Select(ctx)
	}

	logger.Info("Table session completed", "tableID", params.TableID)
	return sessionErr
}

func billAtClose(ctx workflow.Context, tableID int32, pending int) error {
	if pending == 0 {
		return nil
	}

	logger := workflow.GetLogger(ctx)
	billID, err := calculateBill(ctx, tableID)
	if err != nil {
		logger.Error("Failed to bill table at closing time", "tableID", tableID, "error", err)
		return err
	}
	logger.Info("Billed table at closing time", "tableID", tableID, "billID", billID)
	return nil
}

// calculateBill executes the CalculateBill activity
func calculateBill(ctx workflow.Context, tableID int32) (string, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var billID string
	err := workflow.ExecuteActivity(activityCtx, CalculateBillActivity, tableID).Get(ctx, &billID)
	return billID, err
}
