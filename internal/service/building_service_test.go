package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"pims/backend/internal/dto"
	"pims/backend/internal/model"
	"pims/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestBuildingService() (BuildingService, *mockBuildingRepo) {
	bldRepo := newMockBuildingRepo()
	bldRepo.buildings["bld-main"] = &model.Building{
		BuildingID: "bld-main",
		Name:       "议会主楼",
		Code:       "MAIN",
		IsActive:   true,
	}

	repo := &repository.Repository{
		User:     newMockUserRepo(),
		Building: bldRepo,
		Floor:    newMockFloorRepo(),
		Block:    newMockBlockRepo(),
		Room:     newMockRoomRepo(),
		Office:   newMockOfficeRepo(),
		Location: newMockLocationRepo(),
	}
	svc := NewBuildingService(repo, zap.NewNop())
	return svc, bldRepo
}

// ── Create 测试 ──

func TestBuildingService_Create_Success(t *testing.T) {
	svc, _ := setupTestBuildingService()

	req := &dto.CreateBuildingRequest{
		Name:    "媒体楼",
		Code:    "MEDIA",
		Address: "议会大道 2 号",
	}

	result, err := svc.Create(context.Background(), req, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "媒体楼" {
		t.Errorf("期望Name=媒体楼，实际=%s", result.Name)
	}
	if !result.IsActive {
		t.Error("期望默认 IsActive=true")
	}
}

// ── GetByID 测试 ──

func TestBuildingService_GetByID_Success(t *testing.T) {
	svc, _ := setupTestBuildingService()

	result, err := svc.GetByID(context.Background(), "bld-main")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.Code != "MAIN" {
		t.Errorf("期望Code=MAIN，实际=%s", result.Code)
	}
}

func TestBuildingService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestBuildingService()

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrBuildingNotFound) {
		t.Errorf("期望 ErrBuildingNotFound，实际: %v", err)
	}
}

// ── List 测试 ──

func TestBuildingService_List_ActiveOnly(t *testing.T) {
	svc, bldRepo := setupTestBuildingService()
	bldRepo.buildings["bld-old"] = &model.Building{
		BuildingID: "bld-old",
		Name:       "旧办公楼",
		Code:       "OLD",
		IsActive:   false,
	}

	result, err := svc.List(context.Background(), &dto.BuildingListRequest{IncludeInactive: false})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	for _, b := range result {
		if b.Code == "OLD" {
			t.Error("不应返回停用大楼")
		}
	}
}

// ── Update 测试 ──

func TestBuildingService_Update_PartialFields(t *testing.T) {
	svc, _ := setupTestBuildingService()

	newName := "议会主楼（翻新）"
	result, err := svc.Update(context.Background(), "bld-main", &dto.UpdateBuildingRequest{
		Name: &newName,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Name != newName {
		t.Errorf("期望名称更新，实际=%s", result.Name)
	}
	// 未提交的字段保持不变
	if result.Code != "MAIN" {
		t.Errorf("期望Code不变，实际=%s", result.Code)
	}
}

// ── Delete 测试 ──

func TestBuildingService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestBuildingService()

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, ErrBuildingNotFound) {
		t.Errorf("期望 ErrBuildingNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/building_service_test.go
