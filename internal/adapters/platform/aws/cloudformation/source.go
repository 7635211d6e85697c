package cloudformation

import (
	aws_errors "github.com/olusolaa/stack-tail/internal/adapters/platform/aws/errors"
	aws_limiter "github.com/olusolaa/stack-tail/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/stack-tail/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/stack-tail/internal/core/ports"
)

// sourceBase carries what both sources share: one client, one stack, and the
// limiter/error handler wrapped around every call.
type sourceBase struct {
	client       CloudFormationClientInterface
	stackName    string
	logger       ports.Logger
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
}

// SourceOption configures a source.
type SourceOption func(*sourceBase)

// WithRateLimiter provides an option to set a custom rate limiter.
func WithRateLimiter(limiter shared.RateLimiter) SourceOption {
	return func(b *sourceBase) {
		if limiter != nil {
			b.limiter = limiter
		}
	}
}

// WithErrorHandler provides an option to set a custom error handler.
func WithErrorHandler(handler shared.ErrorHandler) SourceOption {
	return func(b *sourceBase) {
		if handler != nil {
			b.errorHandler = handler
		}
	}
}

func newSourceBase(client CloudFormationClientInterface, stackName string, logger ports.Logger, opts []SourceOption) sourceBase {
	b := sourceBase{
		client:       client,
		stackName:    stackName,
		logger:       logger,
		errorHandler: &aws_errors.DefaultErrorHandler{},
	}
	for _, opt := range opts {
		opt(&b)
	}
	if b.limiter == nil {
		b.limiter = aws_limiter.New(aws_limiter.DefaultRateLimitRPS, logger)
	}
	return b
}
