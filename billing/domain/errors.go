package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"

	"encore.dev/beta/errs"
)

// StoreError converts a failure from the data store into the error returned to
// callers. Connectivity problems become Unavailable; anything else that went
// wrong while running op becomes Internal.
func StoreError(err error, op string) error {
	if IsStoreUnavailable(err) {
		return &errs.Error{Code: errs.Unavailable, Message: "data store unavailable"}
	}
	return &errs.Error{Code: errs.Internal, Message: op + " failed"}
}

func IsStoreUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// pgxpool hands back puddle's error once the pool is closed
	if errors.Is(err, puddle.ErrClosedPool) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgErr.Code == pgerrcode.AdminShutdown ||
			pgErr.Code == pgerrcode.CannotConnectNow
	}
	return false
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
