package dto

import (
	"strings"

	"talentia_backend/internal/models"
)

// SearchFacultyCriteria carries everything an institution may filter on.
// Parsing is permissive: an unrecognized value means "no constraint on that
// axis", never an error, so stale frontend filters degrade gracefully.
type SearchFacultyCriteria struct {
	Query          string   `form:"query"`
	Country        string   `form:"country"`
	Area           string   `form:"area"`
	Subarea        string   `form:"subarea"`
	Language       string   `form:"language"`
	Modality       []string `form:"modality"`
	Accreditation  string   `form:"accreditation"`
	DoctorateOnly  bool     `form:"doctorate_only"`
	TeachingLevels []string `form:"teaching_levels"`
}

// Normalize trims whitespace and clears enum-like fields that hold values
// the platform does not know.
func (c *SearchFacultyCriteria) Normalize() {
	c.Query = strings.TrimSpace(c.Query)
	c.Country = strings.TrimSpace(c.Country)
	c.Area = strings.TrimSpace(c.Area)
	c.Subarea = strings.TrimSpace(c.Subarea)
	c.Language = strings.TrimSpace(c.Language)
	c.Accreditation = strings.TrimSpace(c.Accreditation)
	c.Modality = trimNonEmpty(c.Modality)
	c.TeachingLevels = trimNonEmpty(c.TeachingLevels)
}

func trimNonEmpty(values []string) []string {
	kept := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

// FacultySearchResult is one row of the search response. It is a trimmed
// card, not the full profile; institutions open the profile for details.
type FacultySearchResult struct {
	ID                string         `json:"id"`
	FullName          string         `json:"full_name"`
	Headline          string         `json:"headline,omitempty"`
	Country           string         `json:"country,omitempty"`
	DegreeLevel       string         `json:"degree_level,omitempty"`
	Languages         []string       `json:"languages"`
	Modalities        []string       `json:"modalities"`
	CompletenessScore int            `json:"completeness_score"`
	Expertise         []ExpertiseDTO `json:"expertise"`
}

type SearchFacultyResponse struct {
	Results []FacultySearchResult `json:"results"`
	Total   int                   `json:"total"`
}

func NewFacultySearchResult(p *models.FacultyProfile) FacultySearchResult {
	result := FacultySearchResult{
		ID:                p.ID,
		FullName:          p.FullName,
		Headline:          p.Headline,
		Country:           p.Country,
		DegreeLevel:       p.DegreeLevel,
		Languages:         p.Languages,
		Modalities:        p.Modalities,
		CompletenessScore: p.CompletenessScore,
		Expertise:         make([]ExpertiseDTO, 0, len(p.Expertise)),
	}
	for i := range p.Expertise {
		result.Expertise = append(result.Expertise, NewExpertiseDTO(&p.Expertise[i]))
	}
	return result
}
