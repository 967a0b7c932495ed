package retry

import (
	"math/rand"
	"time"
)

// NewFullJitter returns a strategy whose n-th interval is drawn uniformly
// from [0, min(maxBackoff, baseDelay*2^n)). It never gives up on its own;
// bound it through the retry predicate or wrap the attempts elsewhere.
func NewFullJitter(baseDelay, maxBackoff time.Duration) Backoff {
	if baseDelay <= 0 {
		baseDelay = time.Millisecond
	}
	if maxBackoff < baseDelay {
		maxBackoff = baseDelay
	}
	return &fullJitter{baseDelay: baseDelay, maxBackoff: maxBackoff}
}

type fullJitter struct {
	baseDelay  time.Duration
	maxBackoff time.Duration
	attempt    uint
}

func (b *fullJitter) NextBackOff() time.Duration {
	ceil := b.maxBackoff
	// 1<<attempt overflows past 62 shifts, cap early.
	if b.attempt < 63 {
		if d := b.baseDelay << b.attempt; d > 0 && d < ceil {
			ceil = d
		}
	}
	b.attempt++
	return time.Duration(rand.Int63n(int64(ceil) + 1))
}

func (b *fullJitter) Reset() {
	b.attempt = 0
}
