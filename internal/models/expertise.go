package models

import "github.com/lib/pq"

type ExpertiseEntry struct {
	BaseModel
	FacultyID string `gorm:"not null;index"`
	Area      string `gorm:"not null"`
	Subarea   *string
	Topics    pq.StringArray `gorm:"type:text[]" json:"topics"`
}

func (ExpertiseEntry) TableName() string {
	return "faculty_expertise"
}
