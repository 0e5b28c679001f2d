// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72

	passwordSpecialChars = "!@#$%^&"
)

// ValidatePassword checks password against the strength policy and returns
// the first rule it breaks, in this order: minimum length, maximum length,
// surrounding whitespace, character classes. Lengths count characters, and
// the encoded password must also fit bcrypt's 72 byte input limit.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return &ValidationError{Message: MsgPasswordTooShort}
	}
	if length > maxPasswordLength || len(password) > maxPasswordLength {
		return &ValidationError{Message: MsgPasswordTooLong}
	}
	if strings.TrimSpace(password) != password {
		return &ValidationError{Message: MsgPasswordWhitespace}
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			special = true
		}
	}
	if !lower || !upper || !digit || !special {
		return &ValidationError{Message: MsgPasswordWeak}
	}

	return nil
}
