package http

import (
	"context"

	"github.com/MKhiriev/erosion-server/internal/config"
	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/service"
	"github.com/MKhiriev/erosion-server/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements a service interface with overridable function
// fields; a test sets only the fields it expects to be called.

type fakeAuthService struct {
	loginFn        func(ctx context.Context, creds models.Credentials) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return f.loginFn(ctx, creds)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return f.authenticateFn(ctx, tokenString)
}

type fakeUserService struct {
	listFn       func(ctx context.Context) ([]models.User, error)
	getFn        func(ctx context.Context, id int64) (models.User, error)
	registerFn   func(ctx context.Context, input models.NewUser) (models.User, error)
	updateFn     func(ctx context.Context, id int64, input models.UserUpdate) error
	deleteFn     func(ctx context.Context, id int64) error
	listScoresFn func(ctx context.Context, caller models.User, userID int64) ([]models.Score, error)
}

func (f *fakeUserService) List(ctx context.Context) ([]models.User, error) { return f.listFn(ctx) }
func (f *fakeUserService) Get(ctx context.Context, id int64) (models.User, error) {
	return f.getFn(ctx, id)
}
func (f *fakeUserService) Register(ctx context.Context, input models.NewUser) (models.User, error) {
	return f.registerFn(ctx, input)
}
func (f *fakeUserService) Update(ctx context.Context, id int64, input models.UserUpdate) error {
	return f.updateFn(ctx, id, input)
}
func (f *fakeUserService) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }
func (f *fakeUserService) ListScores(ctx context.Context, caller models.User, userID int64) ([]models.Score, error) {
	return f.listScoresFn(ctx, caller, userID)
}

type fakeMapService struct {
	listFn   func(ctx context.Context) ([]models.Map, error)
	getFn    func(ctx context.Context, id int64) (models.Map, error)
	createFn func(ctx context.Context, input models.MapInput) (models.Map, error)
	updateFn func(ctx context.Context, id int64, input models.MapInput) error
	deleteFn func(ctx context.Context, id int64) error
	layoutFn func(ctx context.Context, id int64) ([]models.LayoutTile, error)
}

func (f *fakeMapService) List(ctx context.Context) ([]models.Map, error) { return f.listFn(ctx) }
func (f *fakeMapService) Get(ctx context.Context, id int64) (models.Map, error) {
	return f.getFn(ctx, id)
}
func (f *fakeMapService) Create(ctx context.Context, input models.MapInput) (models.Map, error) {
	return f.createFn(ctx, input)
}
func (f *fakeMapService) Update(ctx context.Context, id int64, input models.MapInput) error {
	return f.updateFn(ctx, id, input)
}
func (f *fakeMapService) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }
func (f *fakeMapService) Layout(ctx context.Context, id int64) ([]models.LayoutTile, error) {
	return f.layoutFn(ctx, id)
}

type fakeTileService struct {
	listFn   func(ctx context.Context) ([]models.Tile, error)
	getFn    func(ctx context.Context, id int64) (models.Tile, error)
	createFn func(ctx context.Context, input models.TileInput) (models.Tile, error)
	updateFn func(ctx context.Context, id int64, input models.TileInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeTileService) List(ctx context.Context) ([]models.Tile, error) { return f.listFn(ctx) }
func (f *fakeTileService) Get(ctx context.Context, id int64) (models.Tile, error) {
	return f.getFn(ctx, id)
}
func (f *fakeTileService) Create(ctx context.Context, input models.TileInput) (models.Tile, error) {
	return f.createFn(ctx, input)
}
func (f *fakeTileService) Update(ctx context.Context, id int64, input models.TileInput) error {
	return f.updateFn(ctx, id, input)
}
func (f *fakeTileService) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakeLayoutService struct {
	listFn   func(ctx context.Context) ([]models.MapLayout, error)
	getFn    func(ctx context.Context, id int64) (models.MapLayout, error)
	createFn func(ctx context.Context, input models.MapLayoutInput) (models.MapLayout, error)
	updateFn func(ctx context.Context, id int64, input models.MapLayoutInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeLayoutService) List(ctx context.Context) ([]models.MapLayout, error) {
	return f.listFn(ctx)
}
func (f *fakeLayoutService) Get(ctx context.Context, id int64) (models.MapLayout, error) {
	return f.getFn(ctx, id)
}
func (f *fakeLayoutService) Create(ctx context.Context, input models.MapLayoutInput) (models.MapLayout, error) {
	return f.createFn(ctx, input)
}
func (f *fakeLayoutService) Update(ctx context.Context, id int64, input models.MapLayoutInput) error {
	return f.updateFn(ctx, id, input)
}
func (f *fakeLayoutService) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakeScoreService struct {
	listFn   func(ctx context.Context) ([]models.Score, error)
	getFn    func(ctx context.Context, id int64) (models.Score, error)
	createFn func(ctx context.Context, owner models.User, input models.ScoreInput) (models.Score, error)
	updateFn func(ctx context.Context, id int64, input models.ScoreInput) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeScoreService) List(ctx context.Context) ([]models.Score, error) { return f.listFn(ctx) }
func (f *fakeScoreService) Get(ctx context.Context, id int64) (models.Score, error) {
	return f.getFn(ctx, id)
}
func (f *fakeScoreService) Create(ctx context.Context, owner models.User, input models.ScoreInput) (models.Score, error) {
	return f.createFn(ctx, owner, input)
}
func (f *fakeScoreService) Update(ctx context.Context, id int64, input models.ScoreInput) error {
	return f.updateFn(ctx, id, input)
}
func (f *fakeScoreService) Delete(ctx context.Context, id int64) error { return f.deleteFn(ctx, id) }

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string { return f.version }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func ptr[T any](v T) *T { return &v }

// newTestHandler builds a Handler around services with a nop logger.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}
