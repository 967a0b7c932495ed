package venture

import (
	"context"
	"errors"
	"time"

	"github.com/go-venture/venture/logger"
	"github.com/go-venture/venture/retry"
)

// RetriableRequest is a request that carries its own retryability decision.
// The retry combinator's default predicate delegates to it.
type RetriableRequest[C, T any] interface {
	Request[C, T]

	// ShouldRetry reports whether the given failure is worth another
	// attempt after waiting next.
	ShouldRetry(err error, next time.Duration) bool
}

// RetryPredicate decides whether a failed attempt should be retried after
// waiting next. It runs only when the backoff strategy has already granted an
// interval; returning false aborts with the operation error.
type RetryPredicate func(err error, next time.Duration) bool

type RetryOptions struct {
	// Backoff builds the strategy for one logical send. A fresh strategy
	// is drawn and Reset on every Send, so strategies anchored to the
	// wall clock never leak state between sends.
	Backoff retry.Factory

	// Timer produces the delay between attempts.
	Timer Timer

	// Predicate overrides the retry decision. When nil, requests
	// implementing RetriableRequest decide for themselves and all other
	// failures are retried.
	Predicate RetryPredicate

	Logger logger.Logger
}

// Retrying wraps a request so that every send transparently retries failed
// attempts. It is itself a Request and forwards Advance, so it can be
// paginated or sent directly.
//
// Terminal errors are always *RetryError: the wrapped operation error when
// the predicate declines, a timeout-flagged error when the backoff strategy
// gives up, and a shutdown-flagged error when the timer dies. Context
// cancellation surfaces as *CanceledError instead.
type Retrying[C, T any] struct {
	inner   Request[C, T]
	options RetryOptions
}

// WithBackoff builds the retry combinator around req.
func WithBackoff[C, T any](req Request[C, T], optFns ...func(*RetryOptions)) *Retrying[C, T] {
	options := RetryOptions{
		Backoff: func() retry.Backoff { return retry.NewExponential() },
		Timer:   NewSystemTimer(),
		Logger:  &logger.Noop{},
	}

	for _, fn := range optFns {
		fn(&options)
	}

	if options.Predicate == nil {
		options.Predicate = defaultPredicate[C, T](req)
	}

	return &Retrying[C, T]{inner: req, options: options}
}

func defaultPredicate[C, T any](req Request[C, T]) RetryPredicate {
	if rr, ok := req.(RetriableRequest[C, T]); ok {
		return rr.ShouldRetry
	}
	return func(error, time.Duration) bool { return true }
}

func (r *Retrying[C, T]) Send(client C) Response[T] {
	b := r.options.Backoff()
	b.Reset()
	return &retrial[C, T]{req: r, client: client, backoff: b}
}

// Advance steps the wrapped request when it is paged. Wrapping a request
// without the page capability yields a single-page sequence.
func (r *Retrying[C, T]) Advance(page T) bool {
	if pr, ok := r.inner.(PagedRequest[C, T]); ok {
		return pr.Advance(page)
	}
	return false
}

// retrial drives one logical send to its terminal result. At most one of
// {next, wait} is non-nil at any time.
type retrial[C, T any] struct {
	req     *Retrying[C, T]
	client  C
	backoff retry.Backoff
	next    Response[T]
	wait    Response[struct{}]
	attempt int
}

func (r *retrial[C, T]) Await(ctx context.Context) (T, error) {
	var zero T

	for {
		if r.wait != nil {
			if _, err := r.wait.Await(ctx); err != nil {
				if errors.Is(err, ErrTimerShutdown) {
					return zero, shutdownError()
				}
				return zero, &CanceledError{Err: err}
			}
			r.wait = nil
		}

		if r.next == nil {
			r.next = r.req.inner.Send(r.client)
		}

		value, err := r.next.Await(ctx)
		if err == nil {
			return value, nil
		}
		r.next = nil
		r.attempt++

		if ctx.Err() != nil {
			return zero, &CanceledError{Err: err}
		}

		next := r.backoff.NextBackOff()
		if next == retry.Stop {
			return zero, timeoutError(err)
		}
		if !r.req.options.Predicate(err, next) {
			return zero, operationError(err)
		}

		r.req.options.Logger.Warnf(
			"retrying request after failure, attempt=%d, backoff=%v, error=%v",
			r.attempt, next, err,
		)
		r.wait = r.req.options.Timer.ExpiresIn(next)
	}
}
