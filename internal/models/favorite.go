package models

type Favorite struct {
	BaseModel
	InstitutionID string `gorm:"not null;index;uniqueIndex:idx_favorite_pair"`
	FacultyID     string `gorm:"not null;index;uniqueIndex:idx_favorite_pair"`
}
