package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, dropped connections) with this
// type so that [Policy.Do] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Policy describes a bounded retry schedule.
type Policy struct {
	Attempts   int           // total tries including the first (min 1)
	Delay      time.Duration // wait between attempts
	Multiplier float64       // scales the delay after each failure; <=1 keeps it fixed
}

// Do executes fn up to p.Attempts times. It only retries errors wrapped
// with [RetryableError]; other errors are returned immediately. Between
// attempts it waits p.Delay, scaled by p.Multiplier after each failure.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled
// while waiting.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				if p.Multiplier > 1 {
					delay = time.Duration(float64(delay) * p.Multiplier)
				}
			}
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
