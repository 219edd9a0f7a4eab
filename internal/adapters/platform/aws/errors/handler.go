package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/skylift/resourcekit/internal/errors"
)

// HandleAWSError maps an AWS SDK error to an application error code.
// service names the AWS service (e.g. "STS", "S3"), operation the API
// call that failed. ctx is consulted so cancellations short-circuit the
// classification.
func HandleAWSError(service string, operation string, err error, ctx context.Context) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s", service))
	}

	if ctx.Err() != nil || err == context.Canceled || err == context.DeadlineExceeded {
		return errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("context canceled during AWS %s %s call", service, operation))
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "AuthFailure") ||
		strings.Contains(errMsg, "UnauthorizedOperation") ||
		strings.Contains(errMsg, "AccessDenied") ||
		strings.Contains(errMsg, "InvalidClientTokenId") ||
		strings.Contains(errMsg, "ExpiredToken") {
		return errors.Wrap(err, errors.CodePlatformAuthError,
			fmt.Sprintf("AWS authentication error during %s %s", service, operation))
	}

	if isNotFoundError(err, errMsg) {
		return errors.Wrap(err, errors.CodeResourceNotFound,
			fmt.Sprintf("AWS %s %s: target not found", service, operation))
	}

	return errors.Wrap(err, errors.CodePlatformAPIError,
		fmt.Sprintf("AWS %s %s call failed", service, operation))
}

func isNotFoundError(err error, errMsg string) bool {
	if strings.Contains(errMsg, "NotFound") ||
		strings.Contains(errMsg, "not found") ||
		strings.Contains(errMsg, "not exist") ||
		strings.Contains(errMsg, "NoSuchKey") ||
		strings.Contains(errMsg, "NoSuchBucket") {
		return true
	}

	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return isNotFoundErrorCode(apiErr.ErrorCode())
	}

	return false
}

func isNotFoundErrorCode(code string) bool {
	notFoundCodes := []string{
		"InvalidInstanceID.NotFound",
		"InvalidInstanceID.Malformed",
		"NoSuchBucket",
		"NoSuchKey",
		"ResourceNotFoundException",
		"EntityNotFoundException",
		"NotFoundException",
	}

	for _, nfCode := range notFoundCodes {
		if code == nfCode {
			return true
		}
	}
	return false
}
