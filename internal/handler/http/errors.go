// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingBearerToken is returned by the auth middleware when the
	// "Authorization" header is absent, uses another scheme, or carries no
	// token.
	ErrMissingBearerToken = errors.New("missing bearer token")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is returned for paths no route matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned when the path exists but the method
	// is not registered for it.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
