package models

type FacultyDocument struct {
	BaseModel
	FacultyID       string `gorm:"not null;index"`
	Kind            string `gorm:"type:varchar(20);not null;default:'cv'"`
	Path            string `gorm:"not null"`
	OriginalName    string
	MimeType        string
	Size            int64
	StorageProvider string `gorm:"default:'local'"` // 'local', 's3', 'cloudflare_r2'
}
