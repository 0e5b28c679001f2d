package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells whether a failed database operation is worth
// another attempt. The server consults it while waiting for the database at
// startup; request paths never retry.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a dropped connection, a
	// database that is still starting up or a deadlock rollback.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] by SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [Retryable] for PostgreSQL errors of class 08 (connection
// exception), 40 (transaction rollback), 53 (insufficient resources) and 57
// (operator intervention, e.g. the server is starting or shutting down).
// Query cancellation is excluded from class 57. Anything else, including
// non-PostgreSQL errors and nil, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" || code == pgerrcode.QueryCanceled {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}
