package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Type    string `gorm:"not null"` // "request", "system"
	Title   string `gorm:"not null"`
	Content string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"contact_id": "...", "institution_id": "..."}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
