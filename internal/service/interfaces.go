package service

import (
	"context"

	"github.com/MKhiriev/erosion-server/models"
)

// AuthService checks credentials and turns bearer tokens back into users.
type AuthService interface {
	// Login verifies creds and issues a bearer token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	// Authenticate verifies tokenString and resolves it to a stored user.
	// Any failure is reported as ErrUnauthorized.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Register(ctx context.Context, input models.NewUser) (models.User, error)
	Update(ctx context.Context, id int64, input models.UserUpdate) error
	Delete(ctx context.Context, id int64) error
	// ListScores returns the caller's scores. userID must be the caller's id.
	ListScores(ctx context.Context, caller models.User, userID int64) ([]models.Score, error)
}

type MapService interface {
	List(ctx context.Context) ([]models.Map, error)
	Get(ctx context.Context, id int64) (models.Map, error)
	Create(ctx context.Context, input models.MapInput) (models.Map, error)
	Update(ctx context.Context, id int64, input models.MapInput) error
	Delete(ctx context.Context, id int64) error
	Layout(ctx context.Context, id int64) ([]models.LayoutTile, error)
}

type TileService interface {
	List(ctx context.Context) ([]models.Tile, error)
	Get(ctx context.Context, id int64) (models.Tile, error)
	Create(ctx context.Context, input models.TileInput) (models.Tile, error)
	Update(ctx context.Context, id int64, input models.TileInput) error
	Delete(ctx context.Context, id int64) error
}

type LayoutService interface {
	List(ctx context.Context) ([]models.MapLayout, error)
	Get(ctx context.Context, id int64) (models.MapLayout, error)
	Create(ctx context.Context, input models.MapLayoutInput) (models.MapLayout, error)
	Update(ctx context.Context, id int64, input models.MapLayoutInput) error
	Delete(ctx context.Context, id int64) error
}

type ScoreService interface {
	List(ctx context.Context) ([]models.Score, error)
	Get(ctx context.Context, id int64) (models.Score, error)
	// Create stores input as a score of owner. The owner always comes from
	// the authenticated request, never from the body.
	Create(ctx context.Context, owner models.User, input models.ScoreInput) (models.Score, error)
	Update(ctx context.Context, id int64, input models.ScoreInput) error
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
