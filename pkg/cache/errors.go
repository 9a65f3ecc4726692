package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a network backend cannot be reached.
var ErrUnavailable = errors.New("cache backend unavailable")

// RetryableError marks a backend failure as transient. The Redis and MongoDB
// constructors wrap failed pings in it.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or anything it wraps, was marked with
// [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

const retryAttempts = 3

// retryBaseDelay is the first backoff interval; tests shorten it.
var retryBaseDelay = 500 * time.Millisecond

// RetryWithBackoff calls fn up to three times, doubling the pause between
// attempts. Errors not marked with [Retryable] end the loop at once. The
// final error is returned without its RetryableError wrapper.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		var re *RetryableError
		switch {
		case err == nil:
			return nil
		case !errors.As(err, &re):
			return err
		case attempt == retryAttempts:
			return re.Err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
