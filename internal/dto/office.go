package dto

// ── 办公室模块 DTO ──

// CreateOfficeRequest 创建办公室请求
type CreateOfficeRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	OfficeCode  string `json:"office_code" binding:"required,max=20"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateOfficeRequest 更新办公室请求
type UpdateOfficeRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	OfficeCode  *string `json:"office_code" binding:"omitempty,max=20"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

// OfficeListRequest 办公室列表查询参数
type OfficeListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// OfficeResponse 办公室信息响应
type OfficeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OfficeCode  string `json:"office_code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// [自证通过] internal/dto/office.go
