package venture

import (
	"errors"
	"fmt"
)

// ErrNoMorePages is returned by Paginator.NextPage once the sequence of pages
// is exhausted.
var ErrNoMorePages = errors.New("no more pages available")

// ErrTimerShutdown is reported by a delay whose timer substrate has been shut
// down and will never fire again.
var ErrTimerShutdown = errors.New("timer has been shut down")

// CanceledError wraps the context error of a canceled operation.
type CanceledError struct {
	Err error
}

func (e *CanceledError) Error() string {
	return fmt.Sprintf("operation canceled, %v", e.Err)
}

func (e *CanceledError) Unwrap() error {
	return e.Err
}

type retryErrorKind int

const (
	retryErrorOperation retryErrorKind = iota
	retryErrorTimeout
	retryErrorShutdown
)

// RetryError is the terminal error of a retried request. It distinguishes
// three causes without exposing them as an enum: the wrapped operation's own
// error (neither predicate holds, Unwrap returns it), exhaustion of the retry
// budget (IsTimeout), and permanent loss of the retry timer (IsShutdown).
//
// When the budget runs out the operation error of the last attempt stays
// available through Unwrap.
type RetryError struct {
	kind retryErrorKind
	err  error
}

func operationError(err error) *RetryError {
	return &RetryError{kind: retryErrorOperation, err: err}
}

func timeoutError(last error) *RetryError {
	return &RetryError{kind: retryErrorTimeout, err: last}
}

func shutdownError() *RetryError {
	return &RetryError{kind: retryErrorShutdown}
}

func (e *RetryError) Error() string {
	switch e.kind {
	case retryErrorTimeout:
		if e.err != nil {
			return fmt.Sprintf("retry budget exhausted, last error: %v", e.err)
		}
		return "retry budget exhausted"
	case retryErrorShutdown:
		return "retry timer has been shut down"
	default:
		return e.err.Error()
	}
}

// Unwrap returns the operation error that triggered the terminal state, or
// nil for a timer shutdown.
func (e *RetryError) Unwrap() error {
	return e.err
}

// IsTimeout reports whether the retry budget ran out.
func (e *RetryError) IsTimeout() bool {
	return e.kind == retryErrorTimeout
}

// IsShutdown reports whether the retry timer became permanently unusable.
func (e *RetryError) IsShutdown() bool {
	return e.kind == retryErrorShutdown
}
