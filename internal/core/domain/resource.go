package domain

import (
	"fmt"
	"strings"
	"time"
)

// StatusRecord is one normalized unit of stack state: either a stack event or
// a row of the current resource snapshot. Values are never mutated after
// construction; later ticks supersede them.
type StatusRecord struct {
	ResourceType string    `json:"resource_type"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	ResourceID   string    `json:"resource_id"`
	Reason       string    `json:"reason,omitempty"`
}

// IsTerminal reports whether the status has settled, successfully or not.
func (r StatusRecord) IsTerminal() bool {
	return strings.HasSuffix(r.Status, CompleteSuffix) || strings.HasSuffix(r.Status, FailedSuffix)
}

// IsStack reports whether the record describes the stack itself.
func (r StatusRecord) IsStack() bool {
	return r.ResourceType == StackResourceType
}

func (r StatusRecord) IsDeletion() bool {
	return strings.HasPrefix(r.Status, DeletePrefix)
}

func (r StatusRecord) Lifecycle() Lifecycle {
	switch {
	case strings.HasSuffix(r.Status, CompleteSuffix):
		return LifecycleCompleted
	case strings.HasSuffix(r.Status, FailedSuffix):
		return LifecycleFailed
	default:
		return LifecycleInProgress
	}
}

// ParseTimestamp parses an RFC3339 timestamp, keeping its fixed offset.
func ParseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid RFC3339 timestamp %q: %w", value, err)
	}
	return ts, nil
}

// AllTerminal reports whether every record in the batch has settled.
// An empty batch counts as settled.
func AllTerminal(records []StatusRecord) bool {
	for _, r := range records {
		if !r.IsTerminal() {
			return false
		}
	}
	return true
}
