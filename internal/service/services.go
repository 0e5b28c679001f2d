package service

import (
	"fmt"

	"github.com/MKhiriev/erosion-server/internal/config"
	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/utils"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	MapService     MapService
	TileService    TileService
	LayoutService  LayoutService
	ScoreService   ScoreService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokens, err := utils.NewJWTManager(cfg.TokenSignKey, cfg.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating token manager: %w", err)
	}
	hasher := utils.NewPasswordHasher(cfg.PasswordHashCost)

	appInfoService, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, err
	}

	createValidator := validators.NewCreateValidator()
	updateValidator := validators.NewUpdateValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, tokens, hasher, createValidator, logger),
		UserService:    NewUserService(storages.UserRepository, storages.ScoreRepository, hasher, createValidator, updateValidator, logger),
		MapService:     NewMapService(storages.MapRepository, createValidator, updateValidator, logger),
		TileService:    NewTileService(storages.TileRepository, createValidator, updateValidator, logger),
		LayoutService:  NewLayoutService(storages.LayoutRepository, createValidator, updateValidator, logger),
		ScoreService:   NewScoreService(storages.ScoreRepository, createValidator, updateValidator, logger),
		AppInfoService: appInfoService,
	}, nil
}
