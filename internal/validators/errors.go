package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Client facing validation messages.
const (
	MsgNothingToUpdate = "Request body must contain a value to update."

	MsgPasswordTooShort   = "Password must be longer than 8 characters"
	MsgPasswordTooLong    = "Password must be less than 72 characters"
	MsgPasswordWhitespace = "Password must not start or end with empty spaces"
	MsgPasswordWeak       = "Password must contain one upper case, lower case, number and special character"
)

// ValidationError is returned when a request body breaks an input rule.
// Message is safe to show to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingField builds the error reported for an absent required field.
func MissingField(name string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Missing '%s' in request body.", name)}
}
