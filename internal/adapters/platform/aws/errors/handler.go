package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/olusolaa/stack-tail/internal/errors"
)

var authErrorCodes = []string{
	"AccessDenied",
	"AccessDeniedException",
	"AuthFailure",
	"UnauthorizedOperation",
	"ExpiredToken",
	"ExpiredTokenException",
	"InvalidClientTokenId",
	"UnrecognizedClientException",
	"SignatureDoesNotMatch",
}

var throttleErrorCodes = []string{
	"Throttling",
	"ThrottlingException",
	"RequestLimitExceeded",
	"TooManyRequestsException",
}

// HandleAWSError maps an SDK error from a CloudFormation call into an
// AppError carrying code (the per-operation fetch code). The underlying cause
// (not found, auth, throttling, generic API failure) is kept in the chain and
// drives the user-facing message and suggestion.
func HandleAWSError(ctx context.Context, code errors.Code, operation, stackName string, err error) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s", operation))
	}

	cause, message, suggestion := classify(ctx, operation, stackName, err)
	inner := errors.Wrap(err, cause, fmt.Sprintf("%s failed for stack '%s'", operation, stackName))
	return errors.WrapUserFacing(inner, code, message, suggestion)
}

func classify(ctx context.Context, operation, stackName string, err error) (errors.Code, string, string) {
	if ctx.Err() != nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return errors.CodePlatformAPIError,
			fmt.Sprintf("%s for stack '%s' was cancelled", operation, stackName),
			""
	}

	errCode := apiErrorCode(err)
	errMsg := err.Error()

	switch {
	case isStackNotFound(errCode, errMsg):
		return errors.CodeStackNotFound,
			fmt.Sprintf("Stack '%s' does not exist", stackName),
			"Check the stack name and the AWS region (--region or AWS_REGION)."
	case isAuthError(errCode, errMsg):
		return errors.CodePlatformAuthError,
			fmt.Sprintf("Not authorized to call %s for stack '%s'", operation, stackName),
			"Check your AWS credentials (--profile, AWS_PROFILE or AWS_ACCESS_KEY_ID)."
	case containsCode(throttleErrorCodes, errCode):
		return errors.CodePlatformThrottled,
			fmt.Sprintf("CloudFormation throttled %s for stack '%s'", operation, stackName),
			"Increase --interval or lower aws.max_rps."
	default:
		return errors.CodePlatformAPIError,
			fmt.Sprintf("Failed to call %s for stack '%s'", operation, stackName),
			""
	}
}

// apiErrorCode extracts the service error code, or "" for transport errors.
func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return apiErr.ErrorCode()
	}
	var coded interface{ ErrorCode() string }
	if stderrs.As(err, &coded) && coded != nil {
		return coded.ErrorCode()
	}
	return ""
}

// CloudFormation reports a missing stack as a ValidationError whose message
// reads "Stack with id <name> does not exist".
func isStackNotFound(code, msg string) bool {
	if code != "" && code != "ValidationError" {
		return false
	}
	return strings.Contains(msg, "does not exist")
}

func isAuthError(code, msg string) bool {
	if containsCode(authErrorCodes, code) {
		return true
	}
	return strings.Contains(msg, "failed to retrieve credentials") ||
		strings.Contains(msg, "no valid providers in chain")
}

func containsCode(codes []string, code string) bool {
	if code == "" {
		return false
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// DefaultErrorHandler implements shared.ErrorHandler with HandleAWSError.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(ctx context.Context, code errors.Code, operation, stackName string, err error) error {
	return HandleAWSError(ctx, code, operation, stackName, err)
}
