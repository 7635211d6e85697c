package ports

import (
	"context"

	"github.com/olusolaa/stack-tail/internal/core/domain"
)

//go:generate mockery --name Source --output ./mocks --outpkg mocks --case underscore

// Source fetches one snapshot of stack state per call and knows when the
// stack it is watching has settled.
type Source interface {
	Kind() domain.SourceKind
	// Fetch issues exactly one remote call and returns a fresh batch.
	Fetch(ctx context.Context) ([]domain.StatusRecord, error)
	// IsDone decides completion from the latest batch and the current follow flag.
	IsDone(batch []domain.StatusRecord, follow bool) bool
}

type IdentityProvider interface {
	CallerIdentity(ctx context.Context) (string, error)
}

//go:generate mockery --name PlatformProvider --output ./mocks --outpkg mocks --case underscore

// PlatformProvider builds the sources for one stack and reports which
// account the credentials resolve to.
type PlatformProvider interface {
	IdentityProvider
	Type() string
	Sources(stackName string) []Source
}
