package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/jackc/pgerrcode"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// statementError translates a failed INSERT/UPDATE into a store sentinel.
func statementError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUsernameAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound
	case pgerrcode.NumericValueOutOfRange:
		return ErrValueOutOfRange
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// queryAll runs query and scans every row with scan. It always returns a
// non-nil slice on success so empty tables serialize as [].
func queryAll[T any](ctx context.Context, db *DB, funcName, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// queryOne runs query and scans its single row. No row yields ErrNotFound.
func queryOne[T any](ctx context.Context, db *DB, funcName, query string, args []any, scan func(rowScanner) (T, error)) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	row := db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return zero, statementError(err)
	}

	item, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// execOne runs a statement that must touch exactly one row. Zero affected
// rows yields ErrNotFound.
func (db *DB) execOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return statementError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// updateByID writes values to the row with the given id.
func (db *DB) updateByID(ctx context.Context, funcName, table string, id int64, values map[string]any) error {
	query, args, err := buildUpdateQuery(table, id, values)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("id", id).Msg("failed to create query")
		return err
	}
	return db.execOne(ctx, funcName, query, args)
}

// deleteByID removes the row with the given id.
func (db *DB) deleteByID(ctx context.Context, funcName, table string, id int64) error {
	query, args, err := buildDeleteQuery(table, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("id", id).Msg("failed to create query")
		return err
	}
	return db.execOne(ctx, funcName, query, args)
}
