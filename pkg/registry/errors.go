package registry

import "fmt"

// ErrorCode identifies a registry failure kind.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotSignedUp      ErrorCode = "NOT_SIGNED_UP"
)

// Error is returned by registry operations. Message is safe to show callers.
type Error struct {
	Code     ErrorCode
	Message  string
	Activity string
}

func (e *Error) Error() string {
	if e.Activity == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (activity=%q)", e.Message, e.Activity)
}

// Is matches on Code so callers can compare against the sentinels below
// regardless of which activity the error carries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrActivityNotFound = &Error{Code: ErrCodeActivityNotFound, Message: "Activity not found"}
	ErrAlreadySignedUp  = &Error{Code: ErrCodeAlreadySignedUp, Message: "Student already signed up for this activity"}
	ErrNotSignedUp      = &Error{Code: ErrCodeNotSignedUp, Message: "Student is not signed up for this activity"}
)

func newError(base *Error, activity string) *Error {
	return &Error{Code: base.Code, Message: base.Message, Activity: activity}
}
