package service

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

type scoreService struct {
	scoreRepository store.ScoreRepository

	createValidator validators.Validator
	updateValidator validators.Validator

	logger *logger.Logger
}

func NewScoreService(scoreRepository store.ScoreRepository, createValidator, updateValidator validators.Validator, logger *logger.Logger) ScoreService {
	return &scoreService{
		scoreRepository: scoreRepository,
		createValidator: createValidator,
		updateValidator: updateValidator,
		logger:          logger,
	}
}

func (s *scoreService) List(ctx context.Context) ([]models.Score, error) {
	scores, err := s.scoreRepository.List(ctx)
	if err != nil {
		return nil, resourceError(err, ResourceScore, "error listing scores")
	}
	return scores, nil
}

func (s *scoreService) Get(ctx context.Context, id int64) (models.Score, error) {
	score, err := s.scoreRepository.Get(ctx, id)
	if err != nil {
		return models.Score{}, resourceError(err, ResourceScore, "error getting score")
	}
	return score, nil
}

// Create validates input and stores it with owner.ID as user_id.
func (s *scoreService) Create(ctx context.Context, owner models.User, input models.ScoreInput) (models.Score, error) {
	if err := s.createValidator.Validate(ctx, input); err != nil {
		return models.Score{}, err
	}

	created, err := s.scoreRepository.Create(ctx, input.ToScore(owner.ID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "scoreService.Create").
			Int64("user_id", owner.ID).
			Msg("score creation ended with error")
		return models.Score{}, resourceError(err, ResourceScore, "error creating score")
	}
	return created, nil
}

// Update patches the score. user_id is not part of ScoreInput and so can
// never be changed.
func (s *scoreService) Update(ctx context.Context, id int64, input models.ScoreInput) error {
	return patch(ctx, "scoreService.Update", ResourceScore, id, input, s.updateValidator,
		func(ctx context.Context, id int64) error {
			_, err := s.scoreRepository.Get(ctx, id)
			return err
		},
		s.scoreRepository.Update,
	)
}

func (s *scoreService) Delete(ctx context.Context, id int64) error {
	if err := s.scoreRepository.Delete(ctx, id); err != nil {
		return resourceError(err, ResourceScore, "error deleting score")
	}
	return nil
}
