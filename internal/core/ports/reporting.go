package ports

import (
	"context"

	"github.com/olusolaa/stack-tail/internal/core/domain"
)

//go:generate mockery --name Renderer --output ./mocks --outpkg mocks --case underscore
type Renderer interface {
	Render(ctx context.Context, tick domain.Tick) error
}
