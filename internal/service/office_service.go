package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pims/backend/internal/dto"
	"pims/backend/internal/model"
	"pims/backend/internal/repository"
)

// ── 办公室模块业务错误 ──

var (
	ErrOfficeNotFound = errors.New("办公室不存在")
)

// OfficeService 办公室业务接口
type OfficeService interface {
	Create(ctx context.Context, req *dto.CreateOfficeRequest, callerID string) (*dto.OfficeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OfficeResponse, error)
	List(ctx context.Context, req *dto.OfficeListRequest) ([]dto.OfficeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateOfficeRequest, callerID string) (*dto.OfficeResponse, error)
	Delete(ctx context.Context, id string) error
}

type officeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOfficeService 创建 OfficeService 实例
func NewOfficeService(repo *repository.Repository, logger *zap.Logger) OfficeService {
	return &officeService{repo: repo, logger: logger}
}

func (s *officeService) Create(ctx context.Context, req *dto.CreateOfficeRequest, callerID string) (*dto.OfficeResponse, error) {
	o := &model.Office{
		Name:        req.Name,
		OfficeCode:  req.OfficeCode,
		Description: req.Description,
		IsActive:    true,
	}
	o.CreatedBy = &callerID
	o.UpdatedBy = &callerID

	if err := s.repo.Office.Create(ctx, o); err != nil {
		s.logger.Error("创建办公室失败", zap.Error(err))
		return nil, err
	}

	return s.toOfficeResponse(o), nil
}

func (s *officeService) GetByID(ctx context.Context, id string) (*dto.OfficeResponse, error) {
	o, err := s.repo.Office.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfficeNotFound
		}
		s.logger.Error("查询办公室失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toOfficeResponse(o), nil
}

func (s *officeService) List(ctx context.Context, req *dto.OfficeListRequest) ([]dto.OfficeResponse, error) {
	offices, err := s.repo.Office.List(ctx, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出办公室失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OfficeResponse, 0, len(offices))
	for i := range offices {
		result = append(result, *s.toOfficeResponse(&offices[i]))
	}

	return result, nil
}

func (s *officeService) Update(ctx context.Context, id string, req *dto.UpdateOfficeRequest, callerID string) (*dto.OfficeResponse, error) {
	o, err := s.repo.Office.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfficeNotFound
		}
		s.logger.Error("查询办公室失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.OfficeCode != nil {
		o.OfficeCode = *req.OfficeCode
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	o.UpdatedBy = &callerID

	if err := s.repo.Office.Update(ctx, o); err != nil {
		s.logger.Error("更新办公室失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toOfficeResponse(o), nil
}

func (s *officeService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Office.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfficeNotFound
		}
		s.logger.Error("查询办公室失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Office.Delete(ctx, id); err != nil {
		s.logger.Error("删除办公室失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *officeService) toOfficeResponse(o *model.Office) *dto.OfficeResponse {
	return &dto.OfficeResponse{
		ID:          o.OfficeID,
		Name:        o.Name,
		OfficeCode:  o.OfficeCode,
		Description: o.Description,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   o.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/office_service.go
