package service

import (
	"context"
	"iter"
	"time"

	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

const DefaultPollInterval = time.Second

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type FollowEngine struct {
	source   ports.Source
	logger   ports.Logger
	interval time.Duration
	sleep    SleepFunc
	state    FollowState
	consumed bool
}

type EngineOption func(*FollowEngine)

func WithPollInterval(d time.Duration) EngineOption {
	return func(e *FollowEngine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithSleep replaces the inter-tick wait, mainly for tests.
func WithSleep(fn SleepFunc) EngineOption {
	return func(e *FollowEngine) {
		if fn != nil {
			e.sleep = fn
		}
	}
}

func NewFollowEngine(source ports.Source, follow bool, logger ports.Logger, opts ...EngineOption) (*FollowEngine, error) {
	if source == nil {
		return nil, errors.New(errors.CodeConfigValidation, "source cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for follow engine")
	}

	e := &FollowEngine{
		source:   source,
		logger:   logger,
		interval: DefaultPollInterval,
		sleep:    contextSleep,
		state:    Init(follow),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// State returns the engine's current position.
func (e *FollowEngine) State() FollowState {
	return e.state
}

// Ticks returns the lazy tick sequence. Each iteration fetches once, so the
// consumer's work on tick N always finishes before tick N+1 is fetched.
// A fetch error is yielded once and ends the sequence.
func (e *FollowEngine) Ticks(ctx context.Context) iter.Seq2[domain.Tick, error] {
	return func(yield func(domain.Tick, error) bool) {
		if e.consumed {
			yield(domain.Tick{}, errors.New(errors.CodeInternal, "follow engine has already been consumed"))
			return
		}
		e.consumed = true

		for !e.state.Complete() {
			tick, err := e.step(ctx)
			if err != nil {
				yield(domain.Tick{}, err)
				return
			}
			if !yield(tick, nil) {
				e.logger.Debugf(ctx, "Tick consumer stopped early in state %s", e.state)
				return
			}
		}
		e.logger.Debugf(ctx, "Follow engine finished")
	}
}

func (e *FollowEngine) step(ctx context.Context) (domain.Tick, error) {
	if !e.state.IsInit() {
		if err := e.sleep(ctx, e.interval); err != nil {
			return domain.Tick{}, errors.Wrap(err, errors.CodeInternal, "poll wait interrupted")
		}
	}

	batch, err := e.source.Fetch(ctx)
	if err != nil {
		e.logger.Errorf(ctx, err, "Fetching %s failed", e.source.Kind())
		return domain.Tick{}, err
	}

	follow := e.state.Follow()
	done := e.source.IsDone(batch, follow)
	tick := domain.Tick{PreviousCount: e.state.PreviousCount(), Records: batch}

	e.state = Next(follow && !done, len(batch))
	e.logger.Debugf(ctx, "Fetched %d %s (done=%t, next=%s)", len(batch), e.source.Kind(), done, e.state)
	return tick, nil
}

func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
