package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/orders"
)

// TxQueries are repositories bound to a single open transaction.
type TxQueries struct {
	Orders orders.Querier
	Bills  bills.Querier
}

// Ledger owns the transaction boundary for operations that must read orders
// and write a bill atomically.
type Ledger interface {
	// WithinTx runs fn inside a transaction. The transaction is committed when
	// fn returns nil and rolled back on every other exit path.
	WithinTx(ctx context.Context, fn func(q TxQueries) error) error
}

// TxBeginner opens transactions; *pgxpool.Pool satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type pgLedger struct {
	db     TxBeginner
	orders *orders.Queries
	bills  *bills.Queries
	logger Logger
}

// NewLedger creates a ledger backed by a pgx pool.
func NewLedger(db TxBeginner, orderRepo *orders.Queries, billRepo *bills.Queries, logger Logger) Ledger {
	return &pgLedger{
		db:     db,
		orders: orderRepo,
		bills:  billRepo,
		logger: logger,
	}
}

func (l *pgLedger) WithinTx(ctx context.Context, fn func(q TxQueries) error) error {
	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		l.logger.Error("failed to start transaction", "error", err)
		return StoreError(err, "start transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			l.logger.Warn("rollback failed", "error", rbErr)
		}
	}()

	if err := fn(TxQueries{
		Orders: l.orders.WithTx(tx),
		Bills:  l.bills.WithTx(tx),
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		l.logger.Error("failed to commit transaction", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}

	return nil
}
