package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/erosion-server/internal/config"
	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 4
	connMaxLifetime = 30 * time.Minute

	pingBackoffBase = 500 * time.Millisecond
	pingBackoffCap  = 5 * time.Second
)

// NewConnectPostgres opens a pgx-backed connection pool and pings it until it
// answers or cfg.ConnectAttempts is exhausted. Only errors the classifier
// marks as retryable, plus plain network failures, are retried.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.ping(ctx, cfg.ConnectAttempts); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

// ping checks the connection with capped exponential backoff.
func (db *DB) ping(ctx context.Context, attempts int) error {
	if attempts < 1 {
		attempts = 1
	}

	backoff := retry.NewExponential(pingBackoffBase)
	backoff = retry.WithCappedDuration(pingBackoffCap, backoff)
	backoff = retry.WithMaxRetries(uint64(attempts-1), backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}
		if db.isRetryable(err) {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// isRetryable reports whether err is worth another attempt. Errors that are
// not PostgreSQL server errors are connection-level failures (refused,
// reset, DNS) and are retried.
func (db *DB) isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// postgresError returns the SQLSTATE code of err, or "" when err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
