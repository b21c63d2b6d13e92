package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for cache operations.
var (
	// ErrCacheMiss is returned by helpers that require a hit when the key
	// is absent.
	ErrCacheMiss = errors.New("cache miss")

	// ErrNetwork marks backend network failures such as timeouts and
	// refused connections.
	ErrNetwork = errors.New("network error")
)

// RetryableError marks an error as worth retrying.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError anywhere in its
// chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// RetryWithBackoff runs fn up to three times, doubling the delay between
// attempts. Only errors wrapped with Retryable trigger another attempt;
// everything else returns immediately. Cancelling ctx aborts the wait.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	var lastErr error

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err
		if attempt == retryAttempts {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
