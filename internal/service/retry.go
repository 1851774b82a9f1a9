package service

import (
	"context"
	"errors"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

const maxStoreRetries = 3

// overridden in tests to keep retry paths fast
var retryInitialInterval = 200 * time.Millisecond

// retryIdempotent runs a store mutation with bounded exponential
// backoff. Only idempotent operations (upsert, bulk approval) may go
// through here; reads are never retried silently. Domain errors abort
// immediately.
func retryIdempotent(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval

	err := backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(bo, maxStoreRetries), ctx))
	if err != nil && isSerializationFailure(err) {
		return domain.ErrConflictRetryExhausted
	}
	return err
}

// isSerializationFailure reports whether the error is a Postgres
// serialization or deadlock failure, the two conflict classes that
// stay retriable until the budget runs out.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// mapStoreError folds transport-level failures into the store error
// kind so the boundary only ever sees structured codes.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrStoreUnavailable
	}
	return err
}
