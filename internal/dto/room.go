package dto

// ── 房间模块 DTO ──

// CreateRoomRequest 创建房间请求
type CreateRoomRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	RoomNumber  string `json:"room_number" binding:"required,max=20"`
	RoomType    string `json:"room_type"   binding:"omitempty,max=50"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateRoomRequest 更新房间请求
type UpdateRoomRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	RoomNumber  *string `json:"room_number" binding:"omitempty,max=20"`
	RoomType    *string `json:"room_type"   binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

// RoomListRequest 房间列表查询参数
type RoomListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// RoomResponse 房间信息响应
type RoomResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// [自证通过] internal/dto/room.go
