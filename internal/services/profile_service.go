package services

import (
	"gorm.io/gorm"

	"talentia_backend/internal/algorithms"
	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type ProfileService interface {
	GetOwnProfile(db *gorm.DB, userID string) (*dto.FacultyProfileResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateFacultyProfileRequest) (*dto.FacultyProfileResponse, error)
	AddExpertise(db *gorm.DB, userID string, req *dto.AddExpertiseRequest) (*dto.ExpertiseDTO, error)
	RemoveExpertise(db *gorm.DB, userID, entryID string) error
}

type ProfileServiceImpl struct {
	facultyRepo   repositories.FacultyRepository
	expertiseRepo repositories.ExpertiseRepository
	documentRepo  repositories.DocumentRepository
}

func NewProfileService(
	facultyRepo repositories.FacultyRepository,
	expertiseRepo repositories.ExpertiseRepository,
	documentRepo repositories.DocumentRepository,
) ProfileService {
	return &ProfileServiceImpl{
		facultyRepo:   facultyRepo,
		expertiseRepo: expertiseRepo,
		documentRepo:  documentRepo,
	}
}

func (s *ProfileServiceImpl) GetOwnProfile(db *gorm.DB, userID string) (*dto.FacultyProfileResponse, error) {
	profile, err := s.facultyRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewFacultyProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateFacultyProfileRequest) (*dto.FacultyProfileResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.facultyRepo.FindByUserID(tx, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	applyProfileUpdate(profile, req)

	if err := s.facultyRepo.Update(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.recomputeCompleteness(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFacultyProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) AddExpertise(db *gorm.DB, userID string, req *dto.AddExpertiseRequest) (*dto.ExpertiseDTO, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.facultyRepo.FindByUserID(tx, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	entry := &models.ExpertiseEntry{
		FacultyID: profile.ID,
		Area:      req.Area,
		Subarea:   req.Subarea,
		Topics:    req.Topics,
	}
	if err := s.expertiseRepo.Create(tx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.recomputeCompleteness(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewExpertiseDTO(entry)
	return &result, nil
}

func (s *ProfileServiceImpl) RemoveExpertise(db *gorm.DB, userID, entryID string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.facultyRepo.FindByUserID(tx, userID)
	if err != nil {
		return handleProfileError(err)
	}

	entry, err := s.expertiseRepo.FindByID(tx, entryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExpertiseNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if entry.FacultyID != profile.ID {
		// Someone else's entry: indistinguishable from absent.
		return apperrors.ErrNotFound(repositories.ErrExpertiseNotFound)
	}

	if err := s.expertiseRepo.Delete(tx, entryID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.recomputeCompleteness(tx, profile); err != nil {
		return apperrors.InternalError(err)
	}

	return tx.Commit().Error
}

// recomputeCompleteness refreshes the stored score from the current state
// of the profile and its sub-entities.
func (s *ProfileServiceImpl) recomputeCompleteness(tx *gorm.DB, profile *models.FacultyProfile) error {
	expertiseCount, err := s.expertiseRepo.CountByFacultyID(tx, profile.ID)
	if err != nil {
		return err
	}
	documentCount, err := s.documentRepo.CountByFacultyID(tx, profile.ID)
	if err != nil {
		return err
	}

	score := algorithms.CalculateCompletenessScore(profile, int(expertiseCount), int(documentCount))
	profile.CompletenessScore = score
	return s.facultyRepo.UpdateCompleteness(tx, profile.ID, score)
}

func applyProfileUpdate(profile *models.FacultyProfile, req *dto.UpdateFacultyProfileRequest) {
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.YearsTeaching != nil {
		profile.YearsTeaching = *req.YearsTeaching
	}
	if req.YearsProfessional != nil {
		profile.YearsProfessional = *req.YearsProfessional
	}
	if req.DegreeLevel != nil {
		profile.DegreeLevel = *req.DegreeLevel
	}
	if req.AnecaAccreditation != nil {
		profile.AnecaAccreditation = req.AnecaAccreditation
	}
	if req.ResearchSummary != nil {
		profile.ResearchSummary = *req.ResearchSummary
	}
	if req.Orcid != nil {
		profile.Orcid = req.Orcid
	}
	if req.Languages != nil {
		profile.Languages = req.Languages
	}
	if req.Modalities != nil {
		profile.Modalities = req.Modalities
	}
	if req.TeachingLevels != nil {
		profile.TeachingLevels = req.TeachingLevels
	}
}

func handleProfileError(err error) error {
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
		return apperrors.ErrAlreadyExists(err)
	}
	return apperrors.InternalError(err)
}
