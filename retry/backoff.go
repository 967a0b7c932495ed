// Package retry supplies backoff strategies for the retry combinator.
//
// A Backoff yields the wait interval before the next attempt and decides when
// to give up. The default strategy is a jittered exponential backoff bounded
// by a maximum total elapsed time, provided by github.com/cenkalti/backoff,
// whose types satisfy the Backoff interface directly.
package retry

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Stop is returned by NextBackOff once the strategy has given up.
const Stop = backoff.Stop

// Backoff produces successive wait intervals. Implementations are stateful
// and must not be shared between concurrent sends; draw a fresh instance per
// logical send and Reset it before use. Reset must also re-anchor any
// wall-clock state, such as the start instant of an elapsed-time budget.
type Backoff interface {
	// NextBackOff returns the interval to wait before the next attempt,
	// or Stop when no further attempt should be made.
	NextBackOff() time.Duration
	Reset()
}

// Factory builds a fresh Backoff for one logical send.
type Factory func() Backoff

type ExponentialOptions struct {
	InitialInterval     time.Duration
	RandomizationFactor float64
	Multiplier          float64
	MaxInterval         time.Duration

	// MaxElapsedTime bounds the total time spent retrying, counted from
	// the first attempt. Zero means no bound.
	MaxElapsedTime time.Duration
}

// NewExponential returns the default strategy: exponentially growing
// intervals with randomization, giving up once MaxElapsedTime has passed.
func NewExponential(optFns ...func(*ExponentialOptions)) *backoff.ExponentialBackOff {
	o := ExponentialOptions{
		InitialInterval:     backoff.DefaultInitialInterval,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         backoff.DefaultMaxInterval,
		MaxElapsedTime:      backoff.DefaultMaxElapsedTime,
	}

	for _, fn := range optFns {
		fn(&o)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.InitialInterval
	b.RandomizationFactor = o.RandomizationFactor
	b.Multiplier = o.Multiplier
	b.MaxInterval = o.MaxInterval
	b.MaxElapsedTime = o.MaxElapsedTime
	b.Reset()

	return b
}

// NewFixed returns a strategy with a constant interval that gives up after
// maxAttempts intervals. maxAttempts <= 0 means no limit.
func NewFixed(delay time.Duration, maxAttempts int) Backoff {
	return &fixed{delay: delay, maxAttempts: maxAttempts}
}

type fixed struct {
	delay       time.Duration
	maxAttempts int
	used        int
}

func (b *fixed) NextBackOff() time.Duration {
	if b.maxAttempts > 0 && b.used >= b.maxAttempts {
		return Stop
	}
	b.used++
	return b.delay
}

func (b *fixed) Reset() {
	b.used = 0
}

// Nop returns a strategy that never allows a retry.
func Nop() Backoff {
	return nop{}
}

type nop struct{}

func (nop) NextBackOff() time.Duration { return Stop }

func (nop) Reset() {}
