package service

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

type mapService struct {
	mapRepository store.MapRepository

	createValidator validators.Validator
	updateValidator validators.Validator

	logger *logger.Logger
}

func NewMapService(mapRepository store.MapRepository, createValidator, updateValidator validators.Validator, logger *logger.Logger) MapService {
	return &mapService{
		mapRepository:   mapRepository,
		createValidator: createValidator,
		updateValidator: updateValidator,
		logger:          logger,
	}
}

func (s *mapService) List(ctx context.Context) ([]models.Map, error) {
	maps, err := s.mapRepository.List(ctx)
	if err != nil {
		return nil, resourceError(err, ResourceMap, "error listing maps")
	}
	return maps, nil
}

func (s *mapService) Get(ctx context.Context, id int64) (models.Map, error) {
	m, err := s.mapRepository.Get(ctx, id)
	if err != nil {
		return models.Map{}, resourceError(err, ResourceMap, "error getting map")
	}
	return m, nil
}

func (s *mapService) Create(ctx context.Context, input models.MapInput) (models.Map, error) {
	if err := s.createValidator.Validate(ctx, input); err != nil {
		return models.Map{}, err
	}

	created, err := s.mapRepository.Create(ctx, input.ToMap())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mapService.Create").Msg("map creation ended with error")
		return models.Map{}, resourceError(err, ResourceMap, "error creating map")
	}
	return created, nil
}

func (s *mapService) Update(ctx context.Context, id int64, input models.MapInput) error {
	return patch(ctx, "mapService.Update", ResourceMap, id, input, s.updateValidator,
		func(ctx context.Context, id int64) error {
			_, err := s.mapRepository.Get(ctx, id)
			return err
		},
		s.mapRepository.Update,
	)
}

func (s *mapService) Delete(ctx context.Context, id int64) error {
	if err := s.mapRepository.Delete(ctx, id); err != nil {
		return resourceError(err, ResourceMap, "error deleting map")
	}
	return nil
}

// Layout returns the map's tiles ordered by position. The map itself is not
// looked up, so an unknown id yields an empty layout.
func (s *mapService) Layout(ctx context.Context, id int64) ([]models.LayoutTile, error) {
	layout, err := s.mapRepository.Layout(ctx, id)
	if err != nil {
		return nil, resourceError(err, ResourceMap, "error reading map layout")
	}
	return layout, nil
}
