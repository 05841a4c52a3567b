package workflow

import (
	"context"
	"math"
	"time"
)

// RetryPolicy bounds the attempts of one step.
type RetryPolicy struct {
	MaxAttempts int
	MinBackoff  time.Duration
	MaxBackoff  time.Duration
	JitterFrac  float64
}

// Attempts returns the attempt budget, never less than one.
func (p RetryPolicy) Attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}

	return p.MaxAttempts
}

// Backoff returns the delay before the attempt following attempt (1-based).
// The base delay doubles per attempt up to MaxBackoff, then jitter of
// +/- JitterFrac is applied using rnd, which must return values in [0, 1).
func (p RetryPolicy) Backoff(attempt int, rnd func() float64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(p.MinBackoff) * math.Pow(2, float64(attempt-1))
	if p.MaxBackoff > 0 && delay > float64(p.MaxBackoff) {
		delay = float64(p.MaxBackoff)
	}

	if p.JitterFrac > 0 && rnd != nil {
		delay *= 1 + p.JitterFrac*(2*rnd()-1)
	}

	if delay < 0 {
		return 0
	}

	return time.Duration(delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
