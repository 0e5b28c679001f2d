package service

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

type tileService struct {
	tileRepository store.TileRepository

	createValidator validators.Validator
	updateValidator validators.Validator

	logger *logger.Logger
}

func NewTileService(tileRepository store.TileRepository, createValidator, updateValidator validators.Validator, logger *logger.Logger) TileService {
	return &tileService{
		tileRepository:  tileRepository,
		createValidator: createValidator,
		updateValidator: updateValidator,
		logger:          logger,
	}
}

func (s *tileService) List(ctx context.Context) ([]models.Tile, error) {
	tiles, err := s.tileRepository.List(ctx)
	if err != nil {
		return nil, resourceError(err, ResourceTile, "error listing tiles")
	}
	return tiles, nil
}

func (s *tileService) Get(ctx context.Context, id int64) (models.Tile, error) {
	tile, err := s.tileRepository.Get(ctx, id)
	if err != nil {
		return models.Tile{}, resourceError(err, ResourceTile, "error getting tile")
	}
	return tile, nil
}

func (s *tileService) Create(ctx context.Context, input models.TileInput) (models.Tile, error) {
	if err := s.createValidator.Validate(ctx, input); err != nil {
		return models.Tile{}, err
	}

	created, err := s.tileRepository.Create(ctx, input.ToTile())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tileService.Create").Msg("tile creation ended with error")
		return models.Tile{}, resourceError(err, ResourceTile, "error creating tile")
	}
	return created, nil
}

func (s *tileService) Update(ctx context.Context, id int64, input models.TileInput) error {
	return patch(ctx, "tileService.Update", ResourceTile, id, input, s.updateValidator,
		func(ctx context.Context, id int64) error {
			_, err := s.tileRepository.Get(ctx, id)
			return err
		},
		s.tileRepository.Update,
	)
}

func (s *tileService) Delete(ctx context.Context, id int64) error {
	if err := s.tileRepository.Delete(ctx, id); err != nil {
		return resourceError(err, ResourceTile, "error deleting tile")
	}
	return nil
}
