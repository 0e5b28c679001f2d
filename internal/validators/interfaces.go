// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate request bodies.
//     Supports optional field-level scoping for targeted validation.
//   - ValidatePassword: the password strength policy applied at registration.
//
// Two implementations are provided: one for creation bodies (every required
// field must be present) and one for partial updates (at least one field
// must carry a value). Both return *ValidationError whose message is sent to
// the client verbatim.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
