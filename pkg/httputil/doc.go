// Package httputil provides HTTP utilities for the remote-service clients.
//
// # Overview
//
// This package provides the retry infrastructure shared by all clients:
//
//   - [Policy]: Bounded retry with a fixed or escalating delay
//   - [RetryableError]: Marker that qualifies an error for retry
//
// # Retry
//
// Remote calls differ in which failures deserve another attempt: a metadata
// fetch retries timeouts and connection failures, a repository-metrics fetch
// retries timeouts only, and a challenge submission is never retried. [Policy]
// therefore retries nothing on its own; the call site decides by wrapping
// qualifying errors in [RetryableError]:
//
//	policy := httputil.Policy{Attempts: 3, Delay: time.Second}
//	err := policy.Do(ctx, func() error {
//	    err := client.Get(ctx, url, &data)
//	    if isTransient(err) {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    return err
//	})
//
// Any error not wrapped in [RetryableError] aborts the loop immediately.
//
// # Configuration
//
// A zero Multiplier keeps the delay fixed between attempts; a Multiplier
// greater than one escalates it after each failure.
package httputil
