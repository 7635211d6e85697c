package cloudformation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/olusolaa/stack-tail/internal/core/domain"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

// ResourceSource reports the current status of every resource in the stack.
type ResourceSource struct {
	sourceBase
}

var _ ports.Source = (*ResourceSource)(nil)

func NewResourceSource(client CloudFormationClientInterface, stackName string, logger ports.Logger, opts ...SourceOption) *ResourceSource {
	return &ResourceSource{sourceBase: newSourceBase(client, stackName, logger, opts)}
}

func (s *ResourceSource) Kind() domain.SourceKind { return domain.SourceKindResources }

func (s *ResourceSource) Fetch(ctx context.Context) ([]domain.StatusRecord, error) {
	if err := s.limiter.Wait(ctx, s.logger); err != nil {
		return nil, errors.Wrap(err, errors.CodeResourcesFetchError, "rate limiter wait failed before DescribeStackResources")
	}

	out, err := s.client.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{
		StackName: aws.String(s.stackName),
	})
	if err != nil {
		return nil, s.errorHandler.Handle(ctx, errors.CodeResourcesFetchError, opDescribeStackResources, s.stackName, err)
	}

	records := make([]domain.StatusRecord, 0, len(out.StackResources))
	for _, r := range out.StackResources {
		record, mapErr := mapResourceToDomain(r)
		if mapErr != nil {
			return nil, mapErr
		}
		records = append(records, record)
	}
	return records, nil
}

// IsDone is true once following is off or every resource has settled.
func (s *ResourceSource) IsDone(batch []domain.StatusRecord, follow bool) bool {
	return !follow || domain.AllTerminal(batch)
}
