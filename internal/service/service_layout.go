package service

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

// layoutService manages tile placements. Unknown map or tile references
// surface as store.ErrReferenceNotFound.
type layoutService struct {
	layoutRepository store.LayoutRepository

	createValidator validators.Validator
	updateValidator validators.Validator

	logger *logger.Logger
}

func NewLayoutService(layoutRepository store.LayoutRepository, createValidator, updateValidator validators.Validator, logger *logger.Logger) LayoutService {
	return &layoutService{
		layoutRepository: layoutRepository,
		createValidator:  createValidator,
		updateValidator:  updateValidator,
		logger:           logger,
	}
}

func (s *layoutService) List(ctx context.Context) ([]models.MapLayout, error) {
	layouts, err := s.layoutRepository.List(ctx)
	if err != nil {
		return nil, resourceError(err, ResourceLayout, "error listing layouts")
	}
	return layouts, nil
}

func (s *layoutService) Get(ctx context.Context, id int64) (models.MapLayout, error) {
	layout, err := s.layoutRepository.Get(ctx, id)
	if err != nil {
		return models.MapLayout{}, resourceError(err, ResourceLayout, "error getting layout")
	}
	return layout, nil
}

func (s *layoutService) Create(ctx context.Context, input models.MapLayoutInput) (models.MapLayout, error) {
	if err := s.createValidator.Validate(ctx, input); err != nil {
		return models.MapLayout{}, err
	}

	created, err := s.layoutRepository.Create(ctx, input.ToMapLayout())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "layoutService.Create").Msg("layout creation ended with error")
		return models.MapLayout{}, resourceError(err, ResourceLayout, "error creating layout")
	}
	return created, nil
}

func (s *layoutService) Update(ctx context.Context, id int64, input models.MapLayoutInput) error {
	return patch(ctx, "layoutService.Update", ResourceLayout, id, input, s.updateValidator,
		func(ctx context.Context, id int64) error {
			_, err := s.layoutRepository.Get(ctx, id)
			return err
		},
		s.layoutRepository.Update,
	)
}

func (s *layoutService) Delete(ctx context.Context, id int64) error {
	if err := s.layoutRepository.Delete(ctx, id); err != nil {
		return resourceError(err, ResourceLayout, "error deleting layout")
	}
	return nil
}
