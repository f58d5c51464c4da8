package services

import (
	"time"

	"gorm.io/gorm"

	"talentia_backend/internal/algorithms"
	"talentia_backend/internal/config"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type SearchService interface {
	SearchFaculty(db *gorm.DB, criteria *dto.SearchFacultyCriteria, institutionUserID string) (*dto.SearchFacultyResponse, error)
}

type SearchServiceImpl struct {
	facultyRepo     repositories.FacultyRepository
	ruleRepo        repositories.VisibilityRuleRepository
	institutionRepo repositories.InstitutionRepository
}

func NewSearchService(
	facultyRepo repositories.FacultyRepository,
	ruleRepo repositories.VisibilityRuleRepository,
	institutionRepo repositories.InstitutionRepository,
) SearchService {
	return &SearchServiceImpl{
		facultyRepo:     facultyRepo,
		ruleRepo:        ruleRepo,
		institutionRepo: institutionRepo,
	}
}

// SearchFaculty runs the pipeline: a coarse database query for candidates,
// a per-candidate visibility re-check for the requesting institution, then
// in-memory refinement. Each stage only narrows the previous one and the
// database ordering (updated_at DESC) survives to the response.
func (s *SearchServiceImpl) SearchFaculty(db *gorm.DB, criteria *dto.SearchFacultyCriteria, institutionUserID string) (*dto.SearchFacultyResponse, error) {
	criteria.Normalize()
	cfg := config.GetConfig()

	institution, err := s.institutionRepo.FindByUserID(db, institutionUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInvalidUserRole
		}
		return nil, apperrors.InternalError(err)
	}
	institutionID := institution.ID

	// Stage A: candidates from the store. Hidden profiles are excluded
	// here, but this stage alone is never trusted for visibility.
	candidates, err := s.facultyRepo.SearchFacultyProfiles(db, repositories.FacultySearchCriteria{
		Query:         criteria.Query,
		Country:       criteria.Country,
		Accreditation: criteria.Accreditation,
		Limit:         cfg.Search.CandidateCap,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Stage B: authoritative visibility check per candidate. Block rules
	// for the institution are loaded once and applied as a set.
	blockedIDs, err := s.ruleRepo.FindBlockedFacultyIDs(db, institutionID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	blocked := make(map[string]bool, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = true
	}

	viewer := &algorithms.Viewer{
		Role:          models.UserRoleInstitution,
		InstitutionID: institutionID,
	}
	now := time.Now()

	visible := candidates[:0]
	for i := range candidates {
		decision := algorithms.ResolveVisibility(&candidates[i], viewer, nil, blocked[candidates[i].ID], now)
		if decision.Visible {
			visible = append(visible, candidates[i])
		}
	}

	// Stage C: in-memory refinement over attributes the coarse query
	// cannot express cheaply.
	results := make([]dto.FacultySearchResult, 0, len(visible))
	for i := range visible {
		p := &visible[i]
		if !algorithms.MatchesArea(p, criteria.Area) {
			continue
		}
		if !algorithms.MatchesSubarea(p, criteria.Subarea) {
			continue
		}
		if !algorithms.MatchesLanguage(p, criteria.Language) {
			continue
		}
		if criteria.DoctorateOnly && !algorithms.HasDoctorate(p, cfg.Search.DoctorateKeywords) {
			continue
		}
		if !algorithms.MatchesModality(p, criteria.Modality) {
			continue
		}
		if !algorithms.MatchesTeachingLevels(p, criteria.TeachingLevels) {
			continue
		}
		results = append(results, dto.NewFacultySearchResult(p))
	}

	return &dto.SearchFacultyResponse{
		Results: results,
		Total:   len(results),
	}, nil
}
