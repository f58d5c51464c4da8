package models

type Contact struct {
	BaseModel
	FacultyID     string `gorm:"not null;index"`
	InstitutionID string `gorm:"not null;index"`
	Subject       string `gorm:"not null"`
	Modality      string
	Dates         string
	Message       string        `gorm:"not null"`
	Status        ContactStatus `gorm:"type:varchar(20);default:'sent'"`

	// Relations
	Institution *Institution `gorm:"foreignKey:InstitutionID"`
}

// IsClosed reports whether the contact reached a terminal status.
func (c *Contact) IsClosed() bool {
	return c.Status == ContactStatusReplied || c.Status == ContactStatusArchived
}
