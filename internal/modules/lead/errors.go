package lead

import "errors"

var (
	// ErrInvalidRequest covers the honeypot trip; deliberately generic.
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrMissingRequiredFields = errors.New("programId and programName required")
	ErrMissingContact        = errors.New("no contact method provided")
	ErrRateLimited           = errors.New("too many leads from user")
)
