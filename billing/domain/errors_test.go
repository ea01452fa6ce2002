package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
	"github.com/stretchr/testify/assert"

	"encore.dev/beta/errs"
)

func TestStoreError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode errs.ErrCode
	}{
		{
			name:         "deadline_exceeded",
			err:          fmt.Errorf("query: %w", context.DeadlineExceeded),
			expectedCode: errs.Unavailable,
		},
		{
			name:         "closed_pool",
			err:          fmt.Errorf("acquire: %w", puddle.ErrClosedPool),
			expectedCode: errs.Unavailable,
		},
		{
			name:         "admin_shutdown",
			err:          &pgconn.PgError{Code: pgerrcode.AdminShutdown},
			expectedCode: errs.Unavailable,
		},
		{
			name:         "connection_failure",
			err:          &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			expectedCode: errs.Unavailable,
		},
		{
			name:         "unique_violation",
			err:          &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedCode: errs.Internal,
		},
		{
			name:         "plain_error",
			err:          errors.New("syntax error"),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := StoreError(tc.err, "load orders")

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedCode == errs.Internal {
				assert.Contains(t, err.Error(), "load orders failed")
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, IsUniqueViolation(puddle.ErrClosedPool))
}
