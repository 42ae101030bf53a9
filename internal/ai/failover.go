package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

type FailoverConfig struct {
	Timeout         time.Duration
	MaxFailures     uint32
	BreakerCooldown time.Duration
}

// Failover tries the remote assistant under a timeout and circuit breaker
// and answers from the local one whenever the remote call fails or the
// breaker is open.
type Failover struct {
	remote   Assistant
	local    Assistant
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
	recorder Recorder
}

// NewFailover builds the selector. remote may be nil, in which case every
// call is served locally.
func NewFailover(remote, local Assistant, cfg FailoverConfig, rec Recorder) *Failover {
	if rec == nil {
		rec = nopRecorder{}
	}
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 3
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ai-upstream",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// A caller walking away says nothing about upstream health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Failover{
		remote:   remote,
		local:    local,
		breaker:  breaker,
		timeout:  timeout,
		recorder: rec,
	}
}

func (f *Failover) Chat(ctx context.Context, in ChatInput) (Reply, error) {
	var remote func(context.Context) (Reply, error)
	if f.remote != nil {
		remote = func(ctx context.Context) (Reply, error) { return f.remote.Chat(ctx, in) }
	}
	return call(ctx, f, OpChat, remote, func(ctx context.Context) (Reply, error) {
		return f.local.Chat(ctx, in)
	})
}

func (f *Failover) FactCheck(ctx context.Context, in FactCheckInput) (Verdict, error) {
	var remote func(context.Context) (Verdict, error)
	if f.remote != nil {
		remote = func(ctx context.Context) (Verdict, error) { return f.remote.FactCheck(ctx, in) }
	}
	return call(ctx, f, OpFactCheck, remote, func(ctx context.Context) (Verdict, error) {
		return f.local.FactCheck(ctx, in)
	})
}

// State exposes the breaker state for health reporting.
func (f *Failover) State() string {
	if f.remote == nil {
		return "local-only"
	}
	return f.breaker.State().String()
}

func call[T any](ctx context.Context, f *Failover, op string, remote, local func(context.Context) (T, error)) (T, error) {
	if remote != nil {
		start := time.Now()
		out, err := f.breaker.Execute(func() (interface{}, error) {
			callCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()
			return remote(callCtx)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			f.recorder.UpstreamRejected(op)
		} else {
			f.recorder.UpstreamLatency(op, time.Since(start), err != nil)
		}
		if err == nil {
			f.recorder.AssistantCall(op, SourceRemote)
			return out.(T), nil
		}
		slog.WarnContext(ctx, "assistant upstream failed, using local fallback",
			"operation", op, "error", err)
	}

	res, err := local(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("local %s: %w", op, err)
	}
	f.recorder.AssistantCall(op, SourceLocal)
	return res, nil
}
