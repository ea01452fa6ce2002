package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Place the configured orders, then bill the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd.Context())
		},
	}
}

// runSession places every configured order in turn. The table is billed when
// at least one order went through.
func (a *app) runSession(ctx context.Context) error {
	placedAny := false
	for _, line := range a.cfg.Orders {
		placed, err := a.placeOrder(ctx, line.MenuID, line.Quantity)
		if err != nil {
			return err
		}
		placedAny = placedAny || placed
	}

	if !placedAny {
		fmt.Fprintln(a.out, "There is unavailability of ordered items.")
		return errNothingPlaced
	}
	return a.billTable(ctx)
}

func (a *app) placeOrder(ctx context.Context, menuID, quantity int32) (bool, error) {
	tableID := a.cfg.TableID
	res, err := a.api.PlaceOrder(ctx, tableID, menuID, quantity)
	if err != nil {
		a.audit.Failed("place_order", tableID, err)
		return false, fmt.Errorf("place order for menu item %d: %w", menuID, err)
	}

	if !res.Placed {
		a.audit.OrderRejected(tableID, menuID)
		fmt.Fprintln(a.out, "Menu item is not available.")
		return false, nil
	}
	a.audit.OrderPlaced(tableID, menuID, quantity)
	fmt.Fprintf(a.out, "Order placed successfully for Table %d.\n", tableID)
	return true, nil
}

func (a *app) billTable(ctx context.Context) error {
	tableID := a.cfg.TableID
	bill, err := a.api.CalculateBill(ctx, tableID)
	if err != nil {
		a.audit.Failed("calculate_bill", tableID, err)
		return fmt.Errorf("calculate bill for table %d: %w", tableID, err)
	}
	a.audit.BillGenerated(bill.ID, bill.TableID, bill.FinalAmountCents)
	return a.printBill(ctx, bill)
}
