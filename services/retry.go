package services

import (
	"context"
	"log"
	"time"

	"github.com/junaidrashid-git/shop-api/apperr"
)

// RetryPolicy bounds an optimistic-lock retry loop.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration // grows linearly with the attempt number
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: 25 * time.Millisecond}
}

// Retry runs fn until it succeeds, fails with a non-conflict error, or the
// attempts run out. Exhaustion is reported as apperr.Internal.
func Retry[T any](ctx context.Context, p RetryPolicy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	var zero T
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, apperr.Wrap(op, apperr.Internal, "cancelled", err)
		}

		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if !apperr.IsConflict(err) {
			return zero, err
		}
		lastErr = err
		log.Printf("⚠️ %s: conflict on attempt %d/%d: %v", op, attempt, p.MaxAttempts, err)

		if attempt == p.MaxAttempts || p.Backoff <= 0 {
			continue
		}
		timer := time.NewTimer(p.Backoff * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, apperr.Wrap(op, apperr.Internal, "cancelled", ctx.Err())
		case <-timer.C:
		}
	}
	return zero, apperr.Wrap(op, apperr.Internal, "retries exhausted", lastErr)
}
