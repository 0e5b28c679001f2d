package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/erosion-server/internal/config"
	"github.com/MKhiriev/erosion-server/internal/logger"
)

// Storages groups every repository behind the single connection pool.
type Storages struct {
	UserRepository   UserRepository
	MapRepository    MapRepository
	TileRepository   TileRepository
	LayoutRepository LayoutRepository
	ScoreRepository  ScoreRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		MapRepository:    NewMapRepository(db, log),
		TileRepository:   NewTileRepository(db, log),
		LayoutRepository: NewLayoutRepository(db, log),
		ScoreRepository:  NewScoreRepository(db, log),
		db:               db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
