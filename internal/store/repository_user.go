package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles player accounts stored in the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Handle, &u.Username, &u.Password)
	return u, err
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query, args, err := buildSelectAllQuery(tableUsers, userColumns, "id")
	if err != nil {
		return nil, err
	}
	return queryAll(ctx, r.DB, "userRepository.List", query, args, scanUser)
}

func (r *userRepository) Get(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildSelectByQuery(tableUsers, userColumns, "id", id)
	if err != nil {
		return models.User{}, err
	}
	return queryOne(ctx, r.DB, "userRepository.Get", query, args, scanUser)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectByQuery(tableUsers, userColumns, "username", username)
	if err != nil {
		return models.User{}, err
	}
	return queryOne(ctx, r.DB, "userRepository.GetByUsername", query, args, scanUser)
}

// Create inserts user with an already hashed password.
//
// Error handling:
//   - username taken (no row returned by ON CONFLICT DO NOTHING, or a
//     unique_violation raced past it) → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildCreateUserQuery(user.Handle, user.Username, user.Password)
	if err != nil {
		return models.User{}, err
	}

	created, err := queryOne(ctx, r.DB, "userRepository.Create", query, args, scanUser)
	if errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Debug().Str("func", "userRepository.Create").Msg("username already taken")
		return models.User{}, ErrUsernameAlreadyExists
	}
	return created, err
}

func (r *userRepository) Update(ctx context.Context, id int64, values map[string]any) error {
	return r.updateByID(ctx, "userRepository.Update", tableUsers, id, values)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "userRepository.Delete", tableUsers, id)
}
