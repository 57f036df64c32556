package inquiry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an inquiry id does not exist.
	ErrNotFound = errors.New("inquiry: not found")

	// ErrStoreUnavailable is returned when the backing store rejects an
	// operation; callers treat it as proof the write did not happen.
	ErrStoreUnavailable = errors.New("inquiry: store unavailable")
)

// ValidationCode identifies why a submission was rejected.
type ValidationCode string

const (
	CodeFieldMissing ValidationCode = "field_missing"
	CodeInvalidEmail ValidationCode = "invalid_email"
	CodeInvalidPhone ValidationCode = "invalid_phone"
	CodeBotDetected  ValidationCode = "bot_detected"
)

// ValidationError describes a rejected submission.
type ValidationError struct {
	Code  ValidationCode
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("inquiry: validation failed: %s (%s)", e.Code, e.Field)
	}
	return fmt.Sprintf("inquiry: validation failed: %s", e.Code)
}

// PublicMessage is the client-facing description of the failure. Bot
// detections get the same generic message as other rejections so automated
// submitters learn nothing about the checks.
func (e *ValidationError) PublicMessage() string {
	switch e.Code {
	case CodeInvalidEmail:
		return "Please provide a valid email address."
	case CodeInvalidPhone:
		return "Please provide a valid phone number."
	case CodeFieldMissing:
		return fmt.Sprintf("Required field is missing: %s.", e.Field)
	default:
		return "Invalid request."
	}
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}
