package utils

import "errors"

var (
	ErrAttendeeNotFound       = errors.New("attendee not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEventNotFound          = errors.New("event not found")
	ErrStationNotFound        = errors.New("station not found")
	ErrVendorNotFound         = errors.New("vendor not found")
	ErrQuestNotFound          = errors.New("quest not found")
	ErrAlreadyScanned         = errors.New("station already scanned")
	ErrQuestAlreadyCompleted  = errors.New("quest already completed")
	ErrSurveyAlreadySubmitted = errors.New("survey already submitted")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
)

// ValidationError carries a user-facing message for input rejected before any
// database work happens. The message is safe to show verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
