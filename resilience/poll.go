package resilience

import (
	"context"
	"errors"
	"time"
)

// ErrPollDeadline is returned when polling gives up before fn reported done.
var ErrPollDeadline = errors.New("polling deadline exceeded")

// PollConfig configures a fixed-or-growing interval polling loop. The zero
// value is not usable: the caller decides the cadence.
type PollConfig struct {
	// Interval is the delay between consecutive polls.
	Interval time.Duration
	// MaxInterval caps the interval when Factor > 1. Zero means no cap.
	MaxInterval time.Duration
	// Factor grows the interval after each poll. Values <= 1 keep it fixed.
	Factor float64
	// Deadline bounds the total polling time. Zero means poll until the
	// context ends.
	Deadline time.Duration
	// OnPoll is called after each non-final poll.
	OnPoll func(attempt int)
}

// Validate checks that the polling cadence is usable.
func (c PollConfig) Validate() error {
	if c.Interval <= 0 {
		return errors.New("poll interval must be positive")
	}
	return nil
}

// Poll invokes fn at the configured cadence until it returns done=true, an
// error, or the context/deadline ends. The first invocation happens
// immediately.
func Poll[T any](ctx context.Context, cfg PollConfig, fn func(ctx context.Context) (T, bool, error)) (T, error) {
	var zero T
	if err := cfg.Validate(); err != nil {
		return zero, err
	}

	if cfg.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, cfg.Deadline, ErrPollDeadline)
		defer cancel()
	}

	interval := cfg.Interval
	for attempt := 1; ; attempt++ {
		result, done, err := fn(ctx)
		if err != nil {
			return zero, err
		}
		if done {
			return result, nil
		}

		if cfg.OnPoll != nil {
			cfg.OnPoll(attempt)
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if cause := context.Cause(ctx); cause != nil {
				return zero, cause
			}
			return zero, ctx.Err()
		case <-timer.C:
		}

		if cfg.Factor > 1 {
			interval = time.Duration(float64(interval) * cfg.Factor)
			if cfg.MaxInterval > 0 && interval > cfg.MaxInterval {
				interval = cfg.MaxInterval
			}
		}
	}
}
