package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/erosion-server/models"
)

// Field name constants used to restrict validation to a subset of a body's
// fields. Passing none validates every field the body declares.
const (
	FieldHandle   = "handle"
	FieldUsername = "username"
	FieldPassword = "password"
)

// CreateValidator checks creation bodies: every required field must be
// supplied, in declared order, and the first missing one is reported.
//
// User bodies ([models.NewUser], [models.Credentials]) treat the empty string
// as missing. Every other body only treats absent or null values as missing,
// so 0 is a valid coordinate, resistance or score.
type CreateValidator struct{}

// NewCreateValidator constructs a CreateValidator and returns it as the
// Validator interface.
func NewCreateValidator() Validator {
	return &CreateValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything that is not a
// request body.
func (v *CreateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validateNewUser(ctx, value, fields...)
	case *models.NewUser:
		return v.validateNewUser(ctx, *value, fields...)

	case models.Credentials:
		return requireTruthy(value, fields...)
	case *models.Credentials:
		return requireTruthy(*value, fields...)

	case models.MapInput, models.TileInput, models.MapLayoutInput, models.ScoreInput:
		return requireSupplied(value.(models.Fielder), fields...)
	case *models.MapInput:
		return requireSupplied(*value, fields...)
	case *models.TileInput:
		return requireSupplied(*value, fields...)
	case *models.MapLayoutInput:
		return requireSupplied(*value, fields...)
	case *models.ScoreInput:
		return requireSupplied(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNewUser checks required fields and then the password policy.
func (v *CreateValidator) validateNewUser(_ context.Context, user models.NewUser, fields ...string) error {
	if err := requireTruthy(user, fields...); err != nil {
		return err
	}
	if len(fields) == 0 || slices.Contains(fields, FieldPassword) {
		return ValidatePassword(user.Password)
	}
	return nil
}

// UpdateValidator checks partial update bodies: at least one updatable
// field must carry a truthy value. Fields set to 0 or "" still get written by
// the update if another field makes the body acceptable.
type UpdateValidator struct{}

// NewUpdateValidator constructs an UpdateValidator and returns it as the
// Validator interface.
func NewUpdateValidator() Validator {
	return &UpdateValidator{}
}

// Validate returns a ValidationError when obj carries nothing to update.
func (v *UpdateValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var body models.Fielder
	switch value := obj.(type) {
	case models.UserUpdate, models.MapInput, models.TileInput, models.MapLayoutInput, models.ScoreInput:
		body = value.(models.Fielder)
	case *models.UserUpdate:
		body = *value
	case *models.MapInput:
		body = *value
	case *models.TileInput:
		body = *value
	case *models.MapLayoutInput:
		body = *value
	case *models.ScoreInput:
		body = *value
	default:
		return ErrUnsupportedType
	}

	selected, err := selectFields(body, fields...)
	if err != nil {
		return err
	}
	for _, f := range selected {
		if f.Truthy() {
			return nil
		}
	}
	return &ValidationError{Message: MsgNothingToUpdate}
}

func requireTruthy(body models.Fielder, fields ...string) error {
	selected, err := selectFields(body, fields...)
	if err != nil {
		return err
	}
	for _, f := range selected {
		if !f.Truthy() {
			return MissingField(f.Name)
		}
	}
	return nil
}

func requireSupplied(body models.Fielder, fields ...string) error {
	selected, err := selectFields(body, fields...)
	if err != nil {
		return err
	}
	for _, f := range selected {
		if !f.Supplied() {
			return MissingField(f.Name)
		}
	}
	return nil
}

// selectFields returns the body's fields restricted to names, keeping the
// body's declared order. An unknown name yields ErrUnknownField.
func selectFields(body models.Fielder, names ...string) ([]models.Field, error) {
	all := body.Fields()
	if len(names) == 0 {
		return all, nil
	}

	selected := make([]models.Field, 0, len(names))
	for _, name := range names {
		idx := slices.IndexFunc(all, func(f models.Field) bool { return f.Name == name })
		if idx < 0 {
			return nil, ErrUnknownField
		}
	}
	for _, f := range all {
		if slices.Contains(names, f.Name) {
			selected = append(selected, f)
		}
	}
	return selected, nil
}
