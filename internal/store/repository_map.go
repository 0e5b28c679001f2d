package store

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

// mapRepository is the PostgreSQL-backed implementation of [MapRepository].
type mapRepository struct {
	*DB
	logger *logger.Logger
}

// NewMapRepository constructs a [MapRepository].
func NewMapRepository(db *DB, logger *logger.Logger) MapRepository {
	logger.Debug().Msg("creating map repository")
	return &mapRepository{DB: db, logger: logger}
}

func scanMap(row rowScanner) (models.Map, error) {
	var m models.Map
	err := row.Scan(&m.ID, &m.RiverStartRow, &m.RiverStartColumn, &m.RiverEndRow, &m.RiverEndColumn)
	return m, err
}

func scanLayoutTile(row rowScanner) (models.LayoutTile, error) {
	var lt models.LayoutTile
	err := row.Scan(&lt.ID, &lt.TileID, &lt.Position, &lt.Type, &lt.Resistance)
	return lt, err
}

func (r *mapRepository) List(ctx context.Context) ([]models.Map, error) {
	query, args, err := buildSelectAllQuery(tableMaps, mapColumns, "id")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "mapRepository.List", query, args, scanMap)
}

func (r *mapRepository) Get(ctx context.Context, id int64) (models.Map, error) {
	query, args, err := buildSelectByQuery(tableMaps, mapColumns, "id", id)
	if err != nil {
		return models.Map{}, err
	}
	return queryOne(ctx, r.DB, "mapRepository.Get", query, args, scanMap)
}

func (r *mapRepository) Create(ctx context.Context, m models.Map) (models.Map, error) {
	query, args, err := buildInsertQuery(tableMaps, mapColumns[1:],
		[]any{m.RiverStartRow, m.RiverStartColumn, m.RiverEndRow, m.RiverEndColumn},
		mapColumns)
	if err != nil {
		return models.Map{}, err
	}
	return queryOne(ctx, r.DB, "mapRepository.Create", query, args, scanMap)
}

func (r *mapRepository) Update(ctx context.Context, id int64, values map[string]any) error {
	return r.updateByID(ctx, "mapRepository.Update", tableMaps, id, values)
}

// Delete removes the map together with its layouts and scores.
func (r *mapRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "mapRepository.Delete", tableMaps, id)
}

func (r *mapRepository) Layout(ctx context.Context, mapID int64) ([]models.LayoutTile, error) {
	query, args, err := buildMapLayoutQuery(mapID)
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "mapRepository.Layout", query, args, scanLayoutTile)
}
