package service

type stateKind uint8

const (
	stateInit stateKind = iota
	stateNext
)

// FollowState is the engine's position between ticks. It has two shapes:
// Init(follow) before the first fetch and Next(follow, previousCount) after.
type FollowState struct {
	kind          stateKind
	follow        bool
	previousCount int
}

func Init(follow bool) FollowState {
	return FollowState{kind: stateInit, follow: follow}
}

func Next(follow bool, previousCount int) FollowState {
	return FollowState{kind: stateNext, follow: follow, previousCount: previousCount}
}

func (s FollowState) IsInit() bool {
	return s.kind == stateInit
}

func (s FollowState) Follow() bool {
	return s.follow
}

// PreviousCount is the number of records drawn on the prior tick; zero for Init.
func (s FollowState) PreviousCount() int {
	if s.kind == stateInit {
		return 0
	}
	return s.previousCount
}

// Complete reports whether no further tick may be produced: one batch has
// been emitted and following is off.
func (s FollowState) Complete() bool {
	return s.kind == stateNext && !s.follow
}

func (s FollowState) String() string {
	if s.kind == stateInit {
		if s.follow {
			return "Init(follow)"
		}
		return "Init(once)"
	}
	if s.follow {
		return "Next(follow)"
	}
	return "Next(stop)"
}
