package app

import (
	"context"

	"github.com/olusolaa/stack-tail/internal/config"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

// Application drives the follow engine and hands every tick to the renderer.
type Application struct {
	Engine   ports.FollowEngine
	Renderer ports.Renderer
	Logger   ports.Logger
	Config   *config.Config
}

func NewApplication(engine ports.FollowEngine, renderer ports.Renderer, logger ports.Logger) *Application {
	return &Application{
		Engine:   engine,
		Renderer: renderer,
		Logger:   logger,
	}
}

// Run returns nil once the engine stops on its own. A fetch error ends the
// run and is returned unchanged so the caller can surface its user message.
func (a *Application) Run(ctx context.Context) error {
	a.Logger.Infof(ctx, "Starting stack tail...")

	ticks := 0
	for tick, err := range a.Engine.Ticks(ctx) {
		if err != nil {
			a.Logger.Errorf(ctx, err, "Stack tail failed")
			return err
		}
		if err := a.Renderer.Render(ctx, tick); err != nil {
			wrapped := errors.Wrap(err, errors.CodeInternal, "failed to render tick")
			a.Logger.Errorf(ctx, wrapped, "Rendering failed")
			return wrapped
		}
		ticks++
	}

	a.Logger.Infof(ctx, "Stack tail finished after %d tick(s)", ticks)
	return nil
}
