package registry

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"dialpool/internal/shared/biztime"
)

// Pacer spaces registry calls at least delay apart. It is a token bucket of
// size one, so the first Wait returns immediately. Time is read from the
// injected clock rather than the wall clock.
type Pacer struct {
	limiter *rate.Limiter
	clock   biztime.Clock
}

func NewPacer(clock biztime.Clock, delay time.Duration) *Pacer {
	if clock == nil {
		clock = biztime.SystemClock()
	}
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1), clock: clock}
}

// Wait blocks until the next slot opens or ctx is done. A cancelled wait
// gives its slot back.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := p.clock.Now()
	r := p.limiter.ReserveN(now, 1)
	if !r.OK() {
		return fmt.Errorf("pacer cannot grant a slot")
	}

	wait := r.DelayFrom(now)
	if wait <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		r.CancelAt(p.clock.Now())
		return ctx.Err()
	case <-p.clock.After(wait):
		return nil
	}
}
