package cloudformation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

// EventSource reports the stack's event timeline in chronological order.
type EventSource struct {
	sourceBase
}

var _ ports.Source = (*EventSource)(nil)

func NewEventSource(client CloudFormationClientInterface, stackName string, logger ports.Logger, opts ...SourceOption) *EventSource {
	return &EventSource{sourceBase: newSourceBase(client, stackName, logger, opts)}
}

func (s *EventSource) Kind() domain.SourceKind { return domain.SourceKindEvents }

func (s *EventSource) Fetch(ctx context.Context) ([]domain.StatusRecord, error) {
	if err := s.limiter.Wait(ctx, s.logger); err != nil {
		return nil, errors.Wrap(err, errors.CodeEventsFetchError, "rate limiter wait failed before DescribeStackEvents")
	}

	out, err := s.client.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(s.stackName),
	})
	if err != nil {
		return nil, s.errorHandler.Handle(ctx, errors.CodeEventsFetchError, opDescribeStackEvents, s.stackName, err)
	}

	// CloudFormation returns events newest first.
	records := make([]domain.StatusRecord, 0, len(out.StackEvents))
	for i := len(out.StackEvents) - 1; i >= 0; i-- {
		record, mapErr := mapEventToDomain(out.StackEvents[i])
		if mapErr != nil {
			return nil, mapErr
		}
		records = append(records, record)
	}
	return records, nil
}

// IsDone is true once following is off or the newest event is a terminal
// status on the stack itself.
func (s *EventSource) IsDone(batch []domain.StatusRecord, follow bool) bool {
	if !follow {
		return true
	}
	if len(batch) == 0 {
		return false
	}
	last := batch[len(batch)-1]
	return last.IsStack() && last.IsTerminal()
}
