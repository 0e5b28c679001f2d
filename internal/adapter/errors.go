package adapter

import "errors"

// Sentinel errors returned for non-2xx responses. The server's error message
// is appended to the wrapped error text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty address")
	ErrInvalidToken = errors.New("invalid token in login response")
	ErrNotLoggedIn  = errors.New("not logged in")
)
