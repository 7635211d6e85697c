package cloudformation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

//go:generate mockery --name CloudFormationClientInterface --output ./mocks --outpkg mocks --case underscore

// CloudFormationClientInterface is the subset of the CloudFormation client the
// sources call. Both operations return a single page; pagination is not followed.
type CloudFormationClientInterface interface {
	DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error)
	DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error)
}

const (
	opDescribeStackEvents    = "DescribeStackEvents"
	opDescribeStackResources = "DescribeStackResources"
)
