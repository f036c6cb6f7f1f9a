package credentials

import "errors"

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures, and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned for structurally valid tokens past expiry.
	ErrTokenExpired = errors.New("token expired")
)
