package models

import "html"

// User represents a registered player.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Handle is the display name shown next to scores.
	Handle string `json:"handle"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`
}

// Sanitized returns a copy of u with its text fields HTML-escaped, ready to be
// written to a response.
func (u User) Sanitized() User {
	u.Handle = html.EscapeString(u.Handle)
	u.Username = html.EscapeString(u.Username)
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NewUser is the registration request body.
type NewUser struct {
	Handle   string `json:"handle"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Fields implements [Fielder] in the order fields are validated.
func (u NewUser) Fields() []Field {
	return []Field{
		{Name: "handle", Value: u.Handle},
		{Name: "username", Value: u.Username},
		{Name: "password", Value: u.Password},
	}
}

// UserUpdate is the PATCH /users/{id} request body. Nil fields are left
// untouched.
type UserUpdate struct {
	Handle   *string `json:"handle"`
	Username *string `json:"username"`
}

// Fields implements [Fielder].
func (u UserUpdate) Fields() []Field {
	return []Field{
		{Name: "handle", Value: u.Handle},
		{Name: "username", Value: u.Username},
	}
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Fields implements [Fielder].
func (c Credentials) Fields() []Field {
	return []Field{
		{Name: "username", Value: c.Username},
		{Name: "password", Value: c.Password},
	}
}
