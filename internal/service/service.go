package service

import (
	"go.uber.org/zap"

	"pims/backend/config"
	"pims/backend/internal/repository"
	"pims/backend/pkg/jwt"
	"pims/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	User     UserService
	Building BuildingService
	Floor    FloorService
	Block    BlockService
	Room     RoomService
	Office   OfficeService
	Location LocationService
	Export   ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Building: NewBuildingService(repo, logger),
		Floor:    NewFloorService(repo, logger),
		Block:    NewBlockService(repo, logger),
		Room:     NewRoomService(repo, logger),
		Office:   NewOfficeService(repo, logger),
		Location: NewLocationService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
