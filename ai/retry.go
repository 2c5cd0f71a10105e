// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ErrQuotaExceeded marks a provider-reported rate-limit (HTTP 429).
// Retrying a quota error only burns the remaining budget, so the retry
// loop treats it as permanent and aborts immediately.
var ErrQuotaExceeded = errors.New("provider quota exceeded")

// Policy describes a bounded retry loop for one provider call.
type Policy struct {
	MaxAttempts uint
	NewBackOff  func() backoff.BackOff
}

// TextPolicy is the chat-completion retry schedule: 3 attempts with
// exponential backoff doubling from 1s (1s, 2s between attempts).
func TextPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		NewBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = time.Second
			b.RandomizationFactor = 0
			b.Multiplier = 2
			return b
		},
	}
}

// ImagePolicy is the image-generation schedule: 5 attempts with a short
// fixed delay, no backoff growth. Empty provider responses are common and
// transient, so the schedule favors quick re-asks.
func ImagePolicy() Policy {
	return Policy{
		MaxAttempts: 5,
		NewBackOff: func() backoff.BackOff {
			return backoff.NewConstantBackOff(500 * time.Millisecond)
		},
	}
}

// call runs op under the policy. Quota errors abort the loop immediately;
// every other error is retried until the attempt budget is spent. Each
// retry is logged with its delay.
func call[T any](ctx context.Context, p Policy, label string, op func() (T, error)) (T, error) {
	wrapped := func() (T, error) {
		v, err := op()
		if err != nil && errors.Is(err, ErrQuotaExceeded) {
			slog.Error("provider quota exhausted, aborting retries", "call", label, "error", err)
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	return backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(p.NewBackOff()),
		backoff.WithMaxTries(p.MaxAttempts),
		backoff.WithNotify(func(err error, delay time.Duration) {
			slog.Warn("provider call failed, retrying", "call", label, "error", err, "delay", delay)
		}),
	)
}
