package models

import (
	"strings"

	"github.com/lib/pq"
)

type FacultyProfile struct {
	BaseModel
	UserID             string  `gorm:"uniqueIndex;not null"`
	FullName           string  `gorm:"not null"`
	Headline           string
	Bio                string
	Country            string
	City               string
	YearsTeaching      int
	YearsProfessional  int
	DegreeLevel        string
	AnecaAccreditation *string
	ResearchSummary    string
	Orcid              *string

	Languages      pq.StringArray `gorm:"type:text[]" json:"languages"`
	Modalities     pq.StringArray `gorm:"type:text[]" json:"modalities"`
	TeachingLevels pq.StringArray `gorm:"type:text[]" json:"teaching_levels"`

	Visibility        VisibilityMode `gorm:"type:varchar(20);default:'public'"`
	MembershipTier    MembershipTier `gorm:"type:varchar(20);default:'basic'"`
	CompletenessScore int            `gorm:"default:0"`
	ProfileViews      int            `gorm:"default:0"`

	// Relations
	Expertise []ExpertiseEntry  `gorm:"foreignKey:FacultyID"`
	Documents []FacultyDocument `gorm:"foreignKey:FacultyID"`
}

// HasLanguage reports membership in the language list, ignoring case.
// Exact values only, never substrings.
func (p *FacultyProfile) HasLanguage(lang string) bool {
	for _, l := range p.Languages {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}
