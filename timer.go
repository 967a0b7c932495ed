package venture

import (
	"context"
	"sync"
	"time"
)

// Timer turns a duration into a pollable delay. Implementations report
// ErrTimerShutdown through the delay once the substrate can no longer fire.
type Timer interface {
	ExpiresIn(d time.Duration) Response[struct{}]
}

// SystemTimer produces delays backed by the runtime clock. Shutdown stops the
// substrate: every delay, in flight or created later, fails immediately with
// ErrTimerShutdown.
type SystemTimer struct {
	once sync.Once
	done chan struct{}
}

func NewSystemTimer() *SystemTimer {
	return &SystemTimer{done: make(chan struct{})}
}

// Shutdown permanently disables the timer. Safe to call more than once.
func (t *SystemTimer) Shutdown() {
	t.once.Do(func() {
		close(t.done)
	})
}

func (t *SystemTimer) ExpiresIn(d time.Duration) Response[struct{}] {
	return ResponseFunc[struct{}](func(ctx context.Context) (struct{}, error) {
		select {
		case <-t.done:
			return struct{}{}, ErrTimerShutdown
		default:
		}

		tm := time.NewTimer(d)
		defer tm.Stop()

		select {
		case <-t.done:
			return struct{}{}, ErrTimerShutdown
		case <-tm.C:
			return struct{}{}, nil
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
	})
}
