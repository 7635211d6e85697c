package domain

type Lifecycle string

const (
	LifecycleInProgress Lifecycle = "IN_PROGRESS"
	LifecycleCompleted  Lifecycle = "COMPLETED"
	LifecycleFailed     Lifecycle = "FAILED"
)

// Tick is one emission of the follow engine: the number of rows drawn on the
// previous tick and the batch fetched on this one.
type Tick struct {
	PreviousCount int
	Records       []StatusRecord
}
