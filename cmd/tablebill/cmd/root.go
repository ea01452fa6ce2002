package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"encore.app/billing/model"
	"encore.app/billing/receipt"
	"encore.app/internal/apiclient"
	"encore.app/internal/archive"
	"encore.app/internal/audit"
	"encore.app/internal/config"
)

// errNothingPlaced makes the session exit non-zero when every order was rejected.
var errNothingPlaced = errors.New("no order could be placed")

// app is what every subcommand works with once configuration is loaded.
type app struct {
	cfg     *config.Config
	api     *apiclient.Client
	audit   *audit.Logger
	archive *archive.Archiver
	out     io.Writer
}

type archiverFunc func(ctx context.Context, cfg config.Archive) (*archive.Archiver, error)

func s3Archiver(ctx context.Context, cfg config.Archive) (*archive.Archiver, error) {
	factory, err := archive.NewS3WriterFactory(ctx, cfg.Region)
	if err != nil {
		return nil, err
	}
	return archive.NewArchiver(factory, cfg), nil
}

// newRootCommand builds the tablebill command tree around its own viper instance.
func newRootCommand(v *viper.Viper, newArchiver archiverFunc) (*cobra.Command, *app) {
	var cfgFile string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tablebill",
		Short: "Places a table's orders and prints its bill",
		Long: `tablebill drives the restaurant billing service for one table: it places the
configured orders, asks for the bill and prints the receipt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.out = cmd.OutOrStdout()
			a.api = apiclient.New(cfg.APIURL,
				apiclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
				apiclient.WithRetries(cfg.Retries, cfg.RetryDelay),
			)
			if a.audit, err = audit.Open(cfg.AuditLog); err != nil {
				return err
			}
			if cfg.Archive.Enabled() {
				if a.archive, err = newArchiver(cmd.Context(), cfg.Archive); err != nil {
					return fmt.Errorf("receipt archive: %w", err)
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tablebill.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "billing service base URL")
	rootCmd.PersistentFlags().Int32("table-id", 0, "table to order for")
	rootCmd.PersistentFlags().String("audit-log", "", "append-only audit log path")
	_ = v.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = v.BindPFlag("table_id", rootCmd.PersistentFlags().Lookup("table-id"))
	_ = v.BindPFlag("audit_log", rootCmd.PersistentFlags().Lookup("audit-log"))

	rootCmd.AddCommand(
		newSessionCommand(a),
		newOrderCommand(a),
		newBillCommand(a),
		newReceiptCommand(a),
		newAvailableCommand(a),
	)
	return rootCmd, a
}

// execute runs the command tree and closes the audit log on every exit path.
// Cobra skips post-run hooks when a command fails, so this cannot live there.
func (a *app) execute(root *cobra.Command) (err error) {
	defer func() {
		if a.audit == nil {
			return
		}
		if closeErr := a.audit.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close audit log: %w", closeErr)
		}
	}()
	return root.Execute()
}

func Execute() {
	root, a := newRootCommand(viper.New(), s3Archiver)
	if err := a.execute(root); err != nil {
		if !errors.Is(err, errNothingPlaced) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// printBill writes the receipt and archives it when archiving is configured.
func (a *app) printBill(ctx context.Context, bill *model.Bill) error {
	r := receipt.FromBill(a.cfg.Restaurant, bill)
	if err := receipt.Render(a.out, r); err != nil {
		return fmt.Errorf("print receipt: %w", err)
	}
	if a.archive == nil {
		return nil
	}
	location, err := a.archive.Store(ctx, r)
	if err != nil {
		a.audit.Failed("archive_receipt", bill.TableID, err)
		return err
	}
	a.audit.ReceiptArchived(bill.ID, location)
	return nil
}
