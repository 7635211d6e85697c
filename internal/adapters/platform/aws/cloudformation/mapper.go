package cloudformation

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/errors"
)

func mapEventToDomain(e cftypes.StackEvent) (domain.StatusRecord, error) {
	ts, err := requireTimestamp(e.Timestamp, "event", aws.ToString(e.EventId))
	if err != nil {
		return domain.StatusRecord{}, err
	}
	return domain.StatusRecord{
		ResourceType: aws.ToString(e.ResourceType),
		Timestamp:    ts,
		Status:       string(e.ResourceStatus),
		ResourceID:   aws.ToString(e.LogicalResourceId),
		Reason:       aws.ToString(e.ResourceStatusReason),
	}, nil
}

func mapResourceToDomain(r cftypes.StackResource) (domain.StatusRecord, error) {
	ts, err := requireTimestamp(r.Timestamp, "resource", aws.ToString(r.LogicalResourceId))
	if err != nil {
		return domain.StatusRecord{}, err
	}
	return domain.StatusRecord{
		ResourceType: aws.ToString(r.ResourceType),
		Timestamp:    ts,
		Status:       string(r.ResourceStatus),
		ResourceID:   aws.ToString(r.LogicalResourceId),
		Reason:       aws.ToString(r.ResourceStatusReason),
	}, nil
}

// The SDK decodes the wire timestamp itself; a missing one means the API
// broke its contract and the run aborts.
func requireTimestamp(ts *time.Time, what, id string) (time.Time, error) {
	if ts == nil || ts.IsZero() {
		return time.Time{}, errors.New(errors.CodeTimestampParseError,
			fmt.Sprintf("CloudFormation returned %s '%s' without a timestamp", what, id))
	}
	return *ts, nil
}
