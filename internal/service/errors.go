package service

import "errors"

// Error taxonomy shared by both request services. Controllers map these to
// HTTP statuses; everything else collapses to a generic 500. Upstream
// provider details never reach the caller.
var (
	// ErrRateLimited is the relay's own per-bucket quota denial.
	ErrRateLimited = errors.New("too many requests, please try again later")

	// ErrUpstreamRateLimited is the inference provider telling us to back off.
	ErrUpstreamRateLimited = errors.New("assistant is busy, please retry in a moment")

	// ErrUpstreamQuota is the inference provider's quota or billing running out.
	ErrUpstreamQuota = errors.New("assistant is temporarily unavailable")

	// ErrUpstreamFailure is any other provider failure (mail or inference).
	ErrUpstreamFailure = errors.New("upstream provider failure")

	// ErrNotFound marks a lookup for a record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized marks a failed owner login.
	ErrUnauthorized = errors.New("invalid access key")
)

// ValidationError names the first failing input field. It is always safe to
// show the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
