package models

// VisibilityRule blocks one institution from seeing one faculty profile.
// Only rule="block" exists today; the column stays so other rule kinds can
// land without a migration.
type VisibilityRule struct {
	BaseModel
	FacultyID     string `gorm:"not null;index;uniqueIndex:idx_rule_pair"`
	InstitutionID string `gorm:"not null;index;uniqueIndex:idx_rule_pair"`
	Rule          string `gorm:"type:varchar(20);not null;default:'block'"`
}
