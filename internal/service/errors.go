package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUnauthorized = errors.New("unauthorized request")
	ErrForbidden    = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Resource names used in NotFoundError messages.
const (
	ResourceUser   = "User"
	ResourceMap    = "Map"
	ResourceTile   = "Tile"
	ResourceLayout = "Layout"
	ResourceScore  = "Score"
)

// NotFoundError reports a lookup of an unknown id. It matches ErrNotFound
// with errors.Is, and its text is the message shown to the client.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found."
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
