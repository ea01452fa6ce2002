package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newOrderCommand(a *app) *cobra.Command {
	var menuID, quantity int32

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place a single order for the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if menuID <= 0 || quantity <= 0 {
				return fmt.Errorf("--menu-id and --quantity must be positive")
			}
			_, err := a.placeOrder(cmd.Context(), menuID, quantity)
			return err
		},
	}
	cmd.Flags().Int32Var(&menuID, "menu-id", 0, "menu item to order")
	cmd.Flags().Int32Var(&quantity, "quantity", 1, "number of portions")
	_ = cmd.MarkFlagRequired("menu-id")
	return cmd
}

func newBillCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bill",
		Short: "Bill the table's open orders and print the receipt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.billTable(cmd.Context())
		},
	}
}

func newReceiptCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <bill-id>",
		Short: "Print the receipt of a stored bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := a.api.GetBill(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get bill %s: %w", args[0], err)
			}
			return a.printBill(cmd.Context(), bill)
		},
	}
}

func newAvailableCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "available <menu-id>",
		Short: "Check whether a menu item can be ordered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid menu id %q", args[0])
			}
			ok, err := a.api.CheckAvailability(cmd.Context(), int32(id))
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(a.out, "Menu item %d is available.\n", id)
			} else {
				fmt.Fprintln(a.out, "Menu item is not available.")
			}
			return nil
		},
	}
}
