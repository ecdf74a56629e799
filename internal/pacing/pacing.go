// Package pacing spaces out calls to the search backends and decides when a
// failed call is worth repeating.
package pacing

import (
	"context"
	"time"
)

// Politeness keeps a fixed pause between one call finishing and the next one
// starting. The first Wait returns immediately.
type Politeness struct {
	interval time.Duration
	ready    time.Time
}

// NewPoliteness with a zero or negative interval never blocks.
func NewPoliteness(interval time.Duration) *Politeness {
	return &Politeness{interval: interval}
}

// Wait blocks until the pause after the last Done has passed or ctx is done.
func (p *Politeness) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	delay := time.Until(p.ready)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Done marks the end of a call; the next Wait lasts at least the interval from now.
func (p *Politeness) Done() {
	if p.interval <= 0 {
		return
	}
	p.ready = time.Now().Add(p.interval)
}

// Backoff decides whether attempt (starting at 1) should be retried after err,
// and how long to sleep first.
type Backoff interface {
	Next(attempt int, err error) (time.Duration, bool)
}

// NoRetry gives up after the first failure.
type NoRetry struct{}

func (NoRetry) Next(int, error) (time.Duration, bool) { return 0, false }

// Exponential doubles the delay after every failed attempt, up to Max.
// Retryable filters which errors are worth another attempt; nil retries all.
type Exponential struct {
	Initial   time.Duration
	Max       time.Duration
	Attempts  int
	Retryable func(error) bool
}

func (e Exponential) Next(attempt int, err error) (time.Duration, bool) {
	if attempt >= e.Attempts {
		return 0, false
	}
	if e.Retryable != nil && !e.Retryable(err) {
		return 0, false
	}
	delay := e.Initial << (attempt - 1)
	if e.Max > 0 && (delay > e.Max || delay <= 0) {
		delay = e.Max
	}
	return delay, true
}

// Do runs op until it succeeds, the policy stops, or ctx is done. It returns
// the last error from op.
func Do(ctx context.Context, policy Backoff, op func(ctx context.Context) error) error {
	if policy == nil {
		policy = NoRetry{}
	}
	for attempt := 1; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		delay, again := policy.Next(attempt, err)
		if !again {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}
