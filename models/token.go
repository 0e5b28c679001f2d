package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a bearer token: the standard registered claims
// (the subject carries the username) plus the numeric user id.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the "user_id" claim.
	UserID int64 `json:"user_id"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and [Claims] for claim
// access. SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in an Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Username returns the "sub" claim.
func (t *Token) Username() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
