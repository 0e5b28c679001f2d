package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

// userService handles player accounts and their score history.
type userService struct {
	userRepository  store.UserRepository
	scoreRepository store.ScoreRepository

	// hasher hashes passwords before they reach storage.
	hasher *utils.PasswordHasher

	createValidator validators.Validator
	updateValidator validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(
	userRepository store.UserRepository,
	scoreRepository store.ScoreRepository,
	hasher *utils.PasswordHasher,
	createValidator, updateValidator validators.Validator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:  userRepository,
		scoreRepository: scoreRepository,
		hasher:          hasher,
		createValidator: createValidator,
		updateValidator: updateValidator,
		logger:          logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, resourceError(err, ResourceUser, "error listing users")
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.Get(ctx, id)
	if err != nil {
		return models.User{}, resourceError(err, ResourceUser, "error getting user")
	}
	return user, nil
}

// Register creates a new account.
//
// The body is checked for handle, username and password (in that order),
// the password against the strength rules, and then the bcrypt hash is
// stored with a single conditional insert.
//
// Returns the stored user or:
//   - *validators.ValidationError for a missing field or a weak password.
//   - ErrUsernameTaken if the username already exists.
//   - a wrapped storage error otherwise.
func (s *userService) Register(ctx context.Context, input models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.createValidator.Validate(ctx, input); err != nil {
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registered, err := s.userRepository.Create(ctx, models.User{
		Handle:   input.Handle,
		Username: input.Username,
		Password: hash,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Str("username", input.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Update patches handle and/or username. A username clash is reported as
// ErrUsernameTaken.
func (s *userService) Update(ctx context.Context, id int64, input models.UserUpdate) error {
	err := patch(ctx, "userService.Update", ResourceUser, id, input, s.updateValidator,
		func(ctx context.Context, id int64) error {
			_, err := s.userRepository.Get(ctx, id)
			return err
		},
		s.userRepository.Update,
	)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return ErrUsernameTaken
	}
	return err
}

// Delete removes the account; its scores go with it.
func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepository.Delete(ctx, id); err != nil {
		return resourceError(err, ResourceUser, "error deleting user")
	}
	return nil
}

// ListScores returns caller's scores ordered by date. Asking for another
// user's history yields ErrForbidden.
func (s *userService) ListScores(ctx context.Context, caller models.User, userID int64) ([]models.Score, error) {
	if caller.ID != userID {
		logger.FromContext(ctx).Warn().
			Str("func", "userService.ListScores").
			Int64("caller", caller.ID).
			Int64("requested", userID).
			Msg("score history requested for another user")
		return nil, ErrForbidden
	}

	scores, err := s.scoreRepository.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing user scores: %w", err)
	}
	return scores, nil
}
