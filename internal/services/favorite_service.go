package services

import (
	"gorm.io/gorm"

	"talentia_backend/internal/models"
	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type FavoriteService interface {
	Toggle(db *gorm.DB, institutionUserID, facultyID string) (*dto.ToggleFavoriteResponse, error)
	List(db *gorm.DB, institutionUserID string) ([]dto.FavoriteDTO, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo    repositories.FavoriteRepository
	facultyRepo     repositories.FacultyRepository
	institutionRepo repositories.InstitutionRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	facultyRepo repositories.FacultyRepository,
	institutionRepo repositories.InstitutionRepository,
) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo:    favoriteRepo,
		facultyRepo:     facultyRepo,
		institutionRepo: institutionRepo,
	}
}

// Toggle flips the favorite state with a read-then-write. Two concurrent
// toggles can race; the accepted worst case is a stray insert or delete,
// never corrupt state, so no lock is taken.
func (s *FavoriteServiceImpl) Toggle(db *gorm.DB, institutionUserID, facultyID string) (*dto.ToggleFavoriteResponse, error) {
	institution, err := s.institutionRepo.FindByUserID(db, institutionUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInvalidUserRole
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.facultyRepo.FindByID(db, facultyID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	_, err = s.favoriteRepo.Find(db, institution.ID, facultyID)
	switch {
	case err == nil:
		if err := s.favoriteRepo.Delete(db, institution.ID, facultyID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ToggleFavoriteResponse{FacultyID: facultyID, Favorited: false}, nil
	case apperrors.Is(err, repositories.ErrFavoriteNotFound):
		favorite := &models.Favorite{
			InstitutionID: institution.ID,
			FacultyID:     facultyID,
		}
		if err := s.favoriteRepo.Create(db, favorite); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ToggleFavoriteResponse{FacultyID: facultyID, Favorited: true}, nil
	default:
		return nil, apperrors.InternalError(err)
	}
}

func (s *FavoriteServiceImpl) List(db *gorm.DB, institutionUserID string) ([]dto.FavoriteDTO, error) {
	institution, err := s.institutionRepo.FindByUserID(db, institutionUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInstitutionNotFound) {
			return nil, apperrors.ErrInvalidUserRole
		}
		return nil, apperrors.InternalError(err)
	}

	favorites, err := s.favoriteRepo.FindByInstitutionID(db, institution.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.FavoriteDTO, 0, len(favorites))
	for _, f := range favorites {
		result = append(result, dto.FavoriteDTO{
			FacultyID: f.FacultyID,
			CreatedAt: f.CreatedAt,
		})
	}
	return result, nil
}
