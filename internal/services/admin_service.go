package services

import (
	"time"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type AdminService interface {
	GetStats(db *gorm.DB) (*dto.PlatformStats, error)
	VerifyFaculty(db *gorm.DB, facultyID string) error
	VerifyInstitution(db *gorm.DB, institutionID string) error
}

type AdminServiceImpl struct {
	userRepo        repositories.UserRepository
	facultyRepo     repositories.FacultyRepository
	institutionRepo repositories.InstitutionRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	facultyRepo repositories.FacultyRepository,
	institutionRepo repositories.InstitutionRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:        userRepo,
		facultyRepo:     facultyRepo,
		institutionRepo: institutionRepo,
	}
}

func (s *AdminServiceImpl) GetStats(db *gorm.DB) (*dto.PlatformStats, error) {
	facultyCount, err := s.facultyRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	institutionCount, err := s.institutionRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	usersByRole := make(map[string]int64)
	for _, role := range []models.UserRole{models.UserRoleFaculty, models.UserRoleInstitution, models.UserRoleAdmin} {
		count, err := s.userRepo.CountByRole(db, role)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		usersByRole[string(role)] = count
	}

	recent, err := s.userRepo.FindRecent(db, time.Now().AddDate(0, 0, -7), 20)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	signups := make([]dto.RecentSignup, 0, len(recent))
	for _, u := range recent {
		signups = append(signups, dto.RecentSignup{
			UserID:    u.ID,
			Email:     u.Email,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
		})
	}

	return &dto.PlatformStats{
		FacultyCount:     facultyCount,
		InstitutionCount: institutionCount,
		UsersByRole:      usersByRole,
		RecentSignups:    signups,
	}, nil
}

func (s *AdminServiceImpl) VerifyFaculty(db *gorm.DB, facultyID string) error {
	profile, err := s.facultyRepo.FindByID(db, facultyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.VerifyUser(db, profile.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) VerifyInstitution(db *gorm.DB, institutionID string) error {
	institution, err := s.institutionRepo.FindByID(db, institutionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.institutionRepo.Verify(db, institution.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.VerifyUser(db, institution.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
