package store

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

type layoutRepository struct {
	*DB
	logger *logger.Logger
}

// NewLayoutRepository constructs a [LayoutRepository].
func NewLayoutRepository(db *DB, logger *logger.Logger) LayoutRepository {
	logger.Debug().Msg("creating layout repository")
	return &layoutRepository{DB: db, logger: logger}
}

func scanLayout(row rowScanner) (models.MapLayout, error) {
	var l models.MapLayout
	err := row.Scan(&l.ID, &l.MapID, &l.TileID, &l.Position)
	return l, err
}

func (r *layoutRepository) List(ctx context.Context) ([]models.MapLayout, error) {
	query, args, err := buildSelectAllQuery(tableMapLayouts, layoutColumns, "id")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "layoutRepository.List", query, args, scanLayout)
}

func (r *layoutRepository) Get(ctx context.Context, id int64) (models.MapLayout, error) {
	query, args, err := buildSelectByQuery(tableMapLayouts, layoutColumns, "id", id)
	if err != nil {
		return models.MapLayout{}, err
	}
	return queryOne(ctx, r.DB, "layoutRepository.Get", query, args, scanLayout)
}

// Create inserts a layout row. An unknown map_id or tile_id yields
// [ErrReferenceNotFound].
func (r *layoutRepository) Create(ctx context.Context, layout models.MapLayout) (models.MapLayout, error) {
	query, args, err := buildInsertQuery(tableMapLayouts, layoutColumns[1:],
		[]any{layout.MapID, layout.TileID, layout.Position},
		layoutColumns)
	if err != nil {
		return models.MapLayout{}, err
	}
	return queryOne(ctx, r.DB, "layoutRepository.Create", query, args, scanLayout)
}

func (r *layoutRepository) Update(ctx context.Context, id int64, values map[string]any) error {
	return r.updateByID(ctx, "layoutRepository.Update", tableMapLayouts, id, values)
}

func (r *layoutRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "layoutRepository.Delete", tableMapLayouts, id)
}
