package dto

import (
	"time"

	"talentia_backend/internal/models"
)

type UpdateFacultyProfileRequest struct {
	FullName           *string  `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Headline           *string  `json:"headline,omitempty" validate:"omitempty,max=200"`
	Bio                *string  `json:"bio,omitempty" validate:"omitempty,max=4000"`
	Country            *string  `json:"country,omitempty"`
	City               *string  `json:"city,omitempty"`
	YearsTeaching      *int     `json:"years_teaching,omitempty" validate:"omitempty,min=0,max=70"`
	YearsProfessional  *int     `json:"years_professional,omitempty" validate:"omitempty,min=0,max=70"`
	DegreeLevel        *string  `json:"degree_level,omitempty"`
	AnecaAccreditation *string  `json:"aneca_accreditation,omitempty"`
	ResearchSummary    *string  `json:"research_summary,omitempty" validate:"omitempty,max=4000"`
	Orcid              *string  `json:"orcid,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	Modalities         []string `json:"modalities,omitempty"`
	TeachingLevels     []string `json:"teaching_levels,omitempty"`
}

type AddExpertiseRequest struct {
	Area    string   `json:"area" validate:"required,min=2,max=200"`
	Subarea *string  `json:"subarea,omitempty" validate:"omitempty,max=200"`
	Topics  []string `json:"topics,omitempty" validate:"omitempty,max=20,dive,max=100"`
}

type ExpertiseDTO struct {
	ID      string   `json:"id"`
	Area    string   `json:"area"`
	Subarea *string  `json:"subarea,omitempty"`
	Topics  []string `json:"topics"`
}

type DocumentDTO struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FacultyProfileResponse is the full owner-facing profile view.
type FacultyProfileResponse struct {
	ID                 string                `json:"id"`
	UserID             string                `json:"user_id"`
	FullName           string                `json:"full_name"`
	Headline           string                `json:"headline,omitempty"`
	Bio                string                `json:"bio,omitempty"`
	Country            string                `json:"country,omitempty"`
	City               string                `json:"city,omitempty"`
	YearsTeaching      int                   `json:"years_teaching"`
	YearsProfessional  int                   `json:"years_professional"`
	DegreeLevel        string                `json:"degree_level,omitempty"`
	AnecaAccreditation *string               `json:"aneca_accreditation,omitempty"`
	ResearchSummary    string                `json:"research_summary,omitempty"`
	Orcid              *string               `json:"orcid,omitempty"`
	Languages          []string              `json:"languages"`
	Modalities         []string              `json:"modalities"`
	TeachingLevels     []string              `json:"teaching_levels"`
	Visibility         models.VisibilityMode `json:"visibility"`
	MembershipTier     models.MembershipTier `json:"membership_tier"`
	CompletenessScore  int                   `json:"completeness_score"`
	ProfileViews       int                   `json:"profile_views"`
	Expertise          []ExpertiseDTO        `json:"expertise"`
	Documents          []DocumentDTO         `json:"documents,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// PublicFacultyProfile is the limited view anonymous visitors get; contact
// details and documents are withheld.
type PublicFacultyProfile struct {
	ID          string         `json:"id"`
	FullName    string         `json:"full_name"`
	Headline    string         `json:"headline,omitempty"`
	Country     string         `json:"country,omitempty"`
	DegreeLevel string         `json:"degree_level,omitempty"`
	Languages   []string       `json:"languages"`
	Expertise   []ExpertiseDTO `json:"expertise"`
}

func NewExpertiseDTO(e *models.ExpertiseEntry) ExpertiseDTO {
	return ExpertiseDTO{
		ID:      e.ID,
		Area:    e.Area,
		Subarea: e.Subarea,
		Topics:  e.Topics,
	}
}

func NewFacultyProfileResponse(p *models.FacultyProfile) *FacultyProfileResponse {
	resp := &FacultyProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		FullName:           p.FullName,
		Headline:           p.Headline,
		Bio:                p.Bio,
		Country:            p.Country,
		City:               p.City,
		YearsTeaching:      p.YearsTeaching,
		YearsProfessional:  p.YearsProfessional,
		DegreeLevel:        p.DegreeLevel,
		AnecaAccreditation: p.AnecaAccreditation,
		ResearchSummary:    p.ResearchSummary,
		Orcid:              p.Orcid,
		Languages:          p.Languages,
		Modalities:         p.Modalities,
		TeachingLevels:     p.TeachingLevels,
		Visibility:         p.Visibility,
		MembershipTier:     p.MembershipTier,
		CompletenessScore:  p.CompletenessScore,
		ProfileViews:       p.ProfileViews,
		Expertise:          make([]ExpertiseDTO, 0, len(p.Expertise)),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	for i := range p.Expertise {
		resp.Expertise = append(resp.Expertise, NewExpertiseDTO(&p.Expertise[i]))
	}
	return resp
}

func NewPublicFacultyProfile(p *models.FacultyProfile) *PublicFacultyProfile {
	resp := &PublicFacultyProfile{
		ID:          p.ID,
		FullName:    p.FullName,
		Headline:    p.Headline,
		Country:     p.Country,
		DegreeLevel: p.DegreeLevel,
		Languages:   p.Languages,
		Expertise:   make([]ExpertiseDTO, 0, len(p.Expertise)),
	}
	for i := range p.Expertise {
		resp.Expertise = append(resp.Expertise, NewExpertiseDTO(&p.Expertise[i]))
	}
	return resp
}
