package shared

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/olusolaa/stack-tail/internal/core/ports"
	"github.com/olusolaa/stack-tail/internal/errors"
)

//go:generate mockery --name RateLimiter --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name ErrorHandler --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name STSClientInterface --output ./mocks --outpkg mocks --case underscore

// RateLimiter guards outbound AWS API calls.
type RateLimiter interface {
	Wait(ctx context.Context, logger ports.Logger) error
}

// ErrorHandler classifies an AWS SDK error and wraps it under code.
type ErrorHandler interface {
	Handle(ctx context.Context, code errors.Code, operation, stackName string, err error) error
}

type STSClientInterface interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}
