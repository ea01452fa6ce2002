package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"encore.app/billing/business/bill"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness bill.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business) {
	if billBusiness == nil {
		activityDeps = nil
		return
	}
	activityDeps = &ActivityDependencies{
		BillBusiness: billBusiness,
	}
}

// CalculateBillActivity bills the table's open orders and returns the bill id.
func CalculateBillActivity(ctx context.Context, tableID int32) (string, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing calculate bill activity", "tableID", tableID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return "", temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.BillBusiness.CalculateBill(ctx, tableID)
	if err != nil {
		logger.Error("Failed to calculate bill", "tableID", tableID, "error", err)
		switch errs.Code(err) {
		case errs.AlreadyExists, errs.InvalidArgument:
			return "", temporal.NewNonRetryableApplicationError("failed to calculate bill", "BILL_CALCULATION_FAILED", err)
		}
		return "", err
	}

	logger.Info("Successfully calculated bill", "tableID", tableID, "billID", result.ID, "finalAmountCents", result.FinalAmountCents)
	return result.ID, nil
}
