package engine

import "fmt"

// Policy error codes surfaced to handlers. All of them are recoverable
// caller-side conditions, distinct from infrastructure failures which
// propagate as plain wrapped errors.
const (
	CodeInvalidOperatingHours = "INVALID_OPERATING_HOURS"
	CodeDurationOutOfRange    = "DURATION_OUT_OF_RANGE"
	CodeOutsideOperatingHours = "OUTSIDE_OPERATING_HOURS"
	CodeRoomClosed            = "ROOM_CLOSED"
	CodeConflict              = "CONFLICT"
	CodeDateNotBookable       = "DATE_NOT_BOOKABLE"
	CodeSlotMisaligned        = "SLOT_MISALIGNED"
	CodeValidation            = "VALIDATION"
	CodeNotFound              = "NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
)

// PolicyError is a tagged domain rejection. ConflictID is set only for
// CONFLICT and names the blocking reservation.
type PolicyError struct {
	Code       string
	Message    string
	ConflictID string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPolicyError(code, message string) error {
	return &PolicyError{Code: code, Message: message}
}

// NewConflictError reports a collision with an existing reservation.
func NewConflictError(conflictID string) error {
	return &PolicyError{
		Code:       CodeConflict,
		Message:    fmt.Sprintf("time range collides with reservation %s", conflictID),
		ConflictID: conflictID,
	}
}
