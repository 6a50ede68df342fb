// Package ratelimit gates the chat endpoint with a fixed-window limiter
// keyed by client IP. The window and budget are configuration; the default
// policy is 3 requests per 60 seconds.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Decision is the outcome of checking one request against the window.
// When Denied, ResetInSeconds tells the caller how long until the window
// reopens; it is always at least 1.
type Decision struct {
	Denied         bool
	ResetInSeconds int64
}

type Limiter struct {
	limiter *limiter.Limiter
}

func New(window time.Duration, max int64) *Limiter {
	return &Limiter{
		limiter: limiter.New(memory.NewStore(), limiter.Rate{
			Period: window,
			Limit:  max,
		}),
	}
}

// Check consumes one slot for the request's client IP.
func (l *Limiter) Check(r *http.Request) (Decision, error) {
	return l.CheckKey(r.Context(), l.limiter.GetIPKey(r))
}

// CheckKey consumes one slot for an arbitrary key.
func (l *Limiter) CheckKey(ctx context.Context, key string) (Decision, error) {
	c, err := l.limiter.Get(ctx, key)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check: %w", err)
	}
	if !c.Reached {
		return Decision{}, nil
	}
	reset := c.Reset - time.Now().Unix()
	if reset < 1 {
		reset = 1
	}
	return Decision{Denied: true, ResetInSeconds: reset}, nil
}
