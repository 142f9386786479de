package awscloud

import (
	"errors"

	"github.com/aws/smithy-go"
)

// isDuplicatePermission reports whether an authorize call failed only
// because the rule already exists.
func isDuplicatePermission(err error) bool {
	return hasAPIErrorCode(err, "InvalidPermission.Duplicate")
}

// isNotFound reports whether a lookup failed because the resource does not
// exist (as opposed to a transport or permission failure).
func isNotFound(err error) bool {
	return hasAPIErrorCode(err,
		"InvalidKeyPair.NotFound",
		"InvalidVpcID.NotFound",
		"InvalidGroup.NotFound",
		"NoSuchEntity",
	)
}

func hasAPIErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}
	return false
}
