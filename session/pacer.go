package session

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer implements the step boundary: each Wait blocks until at least delay
// has passed since the previous one. A zero delay never blocks.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a pacer releasing one step per delay.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	l := rate.NewLimiter(rate.Every(delay), 1)
	// Spend the initial burst token so the first boundary waits too.
	l.Allow()

	return &Pacer{limiter: l}
}

// Wait suspends the caller until the next step is due or ctx is done.
// Cancellation always surfaces as ctx.Err(), so callers can match it with
// errors.Is(err, context.Canceled) or context.DeadlineExceeded.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}

	r := p.limiter.Reserve()
	d := r.Delay()
	if d == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
