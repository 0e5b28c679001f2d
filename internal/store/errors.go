package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query or statement targets a row id
	// that does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrUsernameAlreadyExists is returned when an INSERT or UPDATE of a
	// user would duplicate an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrReferenceNotFound is returned when an INSERT or UPDATE references a
	// map, tile or user id that does not exist (foreign_key_violation).
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrValueOutOfRange is returned when a numeric value does not fit its
	// column (numeric_value_out_of_range).
	ErrValueOutOfRange = errors.New("numeric value out of range")

	// ErrNothingToUpdate is returned when an update is requested without any
	// column values.
	ErrNothingToUpdate = errors.New("no columns to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to iterate rows")

	// ErrConnectingDatabase is returned when the database cannot be reached
	// at startup.
	ErrConnectingDatabase = errors.New("failed to connect to database")
)
