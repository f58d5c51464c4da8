package models

type Institution struct {
	BaseModel
	UserID     string `gorm:"uniqueIndex;not null"`
	Name       string `gorm:"not null"`
	Country    string
	Website    string
	Status     InstitutionStatus `gorm:"type:varchar(20);default:'trial'"`
	IsVerified bool              `gorm:"default:false"`
}
