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

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes and issues and resolves HS256
// bearer tokens.
type authService struct {
	// userRepository is used to look users up by username.
	userRepository store.UserRepository

	// tokens signs and verifies bearer tokens with the configured secret.
	tokens *utils.JWTManager

	// hasher compares plain passwords with stored hashes.
	hasher *utils.PasswordHasher

	// createValidator checks that both credentials are present.
	createValidator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokens *utils.JWTManager,
	hasher *utils.PasswordHasher,
	createValidator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokens:          tokens,
		hasher:          hasher,
		createValidator: createValidator,
		logger:          logger,
	}
}

// Login authenticates an existing user.
//
// Username and password are required in that order. An unknown username
// and a wrong password both yield ErrInvalidCredentials so that the response
// does not reveal which one was wrong.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.createValidator.Validate(ctx, creds); err != nil {
		return models.Token{}, err
	}

	user, err := a.userRepository.GetByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("func", "authService.Login").Str("username", creds.Username).Msg("unknown username")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, user.Password) {
		log.Debug().Str("func", "authService.Login").Int64("id", user.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// Authenticate verifies the token signature and resolves its subject to the
// stored user. The user must still exist under the same id; a deleted or
// renamed account invalidates the token. Every failure is reported as
// ErrUnauthorized and the cause is only logged.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.tokens.Verify(tokenString)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.Authenticate").Msg("token verification failed")
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.GetByUsername(ctx, token.Username())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "authService.Authenticate").Msg("user lookup failed")
			return models.User{}, fmt.Errorf("user lookup failed: %w", err)
		}
		log.Debug().Str("func", "authService.Authenticate").Str("sub", token.Username()).Msg("token subject does not exist")
		return models.User{}, ErrUnauthorized
	}
	if user.ID != token.UserID {
		log.Debug().Str("func", "authService.Authenticate").Int64("id", user.ID).Msg("token user_id does not match subject")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}
