// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field is a single named value taken from a request body.
//
// Request types expose their fields in declared order through a Fields
// method so that validation can report the first offending field. A nil
// Value, or a nil pointer stored in Value, means the client did not supply
// the field (absent key or JSON null).
type Field struct {
	Name  string
	Value any
}

// Supplied reports whether the field was present in the request with a
// non-null value.
func (f Field) Supplied() bool {
	switch v := f.Value.(type) {
	case nil:
		return false
	case *string:
		return v != nil
	case *int:
		return v != nil
	case *int64:
		return v != nil
	case *float64:
		return v != nil
	default:
		return true
	}
}

// Truthy reports whether the field carries a value that is neither absent
// nor a zero value ("", 0, 0.0).
func (f Field) Truthy() bool {
	switch v := f.Value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case *string:
		return v != nil && *v != ""
	case int:
		return v != 0
	case *int:
		return v != nil && *v != 0
	case int64:
		return v != 0
	case *int64:
		return v != nil && *v != 0
	case float64:
		return v != 0
	case *float64:
		return v != nil && *v != 0
	default:
		return true
	}
}

// Deref returns the plain value behind a pointer field. It must only be
// called on supplied fields.
func (f Field) Deref() any {
	switch v := f.Value.(type) {
	case *string:
		return *v
	case *int:
		return *v
	case *int64:
		return *v
	case *float64:
		return *v
	default:
		return v
	}
}

// Fielder is implemented by request bodies that can be validated field by
// field.
type Fielder interface {
	Fields() []Field
}

// SuppliedValues collects the supplied fields of f into a column → value map,
// the shape consumed by partial UPDATE statements.
func SuppliedValues(f Fielder) map[string]any {
	values := make(map[string]any)
	for _, field := range f.Fields() {
		if field.Supplied() {
			values[field.Name] = field.Deref()
		}
	}
	return values
}
