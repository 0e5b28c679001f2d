package store

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

type tileRepository struct {
	*DB
	logger *logger.Logger
}

// NewTileRepository constructs a [TileRepository].
func NewTileRepository(db *DB, logger *logger.Logger) TileRepository {
	logger.Debug().Msg("creating tile repository")
	return &tileRepository{DB: db, logger: logger}
}

func scanTile(row rowScanner) (models.Tile, error) {
	var t models.Tile
	err := row.Scan(&t.ID, &t.Type, &t.Resistance)
	return t, err
}

func (r *tileRepository) List(ctx context.Context) ([]models.Tile, error) {
	query, args, err := buildSelectAllQuery(tableTiles, tileColumns, "id")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "tileRepository.List", query, args, scanTile)
}

func (r *tileRepository) Get(ctx context.Context, id int64) (models.Tile, error) {
	query, args, err := buildSelectByQuery(tableTiles, tileColumns, "id", id)
	if err != nil {
		return models.Tile{}, err
	}
	return queryOne(ctx, r.DB, "tileRepository.Get", query, args, scanTile)
}

func (r *tileRepository) Create(ctx context.Context, tile models.Tile) (models.Tile, error) {
	query, args, err := buildInsertQuery(tableTiles, tileColumns[1:], []any{tile.Type, tile.Resistance}, tileColumns)
	if err != nil {
		return models.Tile{}, err
	}
	return queryOne(ctx, r.DB, "tileRepository.Create", query, args, scanTile)
}

func (r *tileRepository) Update(ctx context.Context, id int64, values map[string]any) error {
	return r.updateByID(ctx, "tileRepository.Update", tableTiles, id, values)
}

func (r *tileRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "tileRepository.Delete", tableTiles, id)
}
