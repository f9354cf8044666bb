// Package latency provides the suspension point used to simulate network
// round trips. Production code waits on a real timer; tests substitute
// Zero or a Func so that no wall-clock time passes.
//
//	sleeper := latency.Timer()
//	if err := sleeper.Sleep(ctx, 300*time.Millisecond); err != nil {
//	    // ctx ended before the delay elapsed
//	}
package latency

import (
	"context"
	"time"
)

// Sleeper suspends the calling goroutine for a duration.
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() when the context ends first.
	Sleep(ctx context.Context, d time.Duration) error
}

// Func adapts an ordinary function to the Sleeper interface.
type Func func(ctx context.Context, d time.Duration) error

// Sleep calls f(ctx, d).
func (f Func) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

type timerSleeper struct{}

// Timer returns a Sleeper backed by a real timer.
func Timer() Sleeper {
	return timerSleeper{}
}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type zeroSleeper struct{}

// Zero returns a Sleeper that never waits and never fails.
func Zero() Sleeper {
	return zeroSleeper{}
}

func (zeroSleeper) Sleep(context.Context, time.Duration) error {
	return nil
}
