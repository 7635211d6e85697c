package ports

import (
	"context"
	"iter"

	"github.com/olusolaa/stack-tail/internal/core/domain"
)

// FollowEngine yields ticks until the source settles, following stops, or a
// fetch fails. The sequence can be ranged over once.
type FollowEngine interface {
	Ticks(ctx context.Context) iter.Seq2[domain.Tick, error]
}
