package model

// Block 区块表 — 对应 blocks
type Block struct {
	BlockID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"block_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code        string `gorm:"type:varchar(20);not null"                      json:"code"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Block) TableName() string { return "blocks" }

// [自证通过] internal/model/block.go
