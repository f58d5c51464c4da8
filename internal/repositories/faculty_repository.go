package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("faculty profile not found")
	ErrProfileAlreadyExists = errors.New("faculty profile already exists for this user")
)

// FacultySearchCriteria is the coarse, database-side half of a search.
// Only fields that translate to cheap SQL predicates live here; everything
// else is refined in memory by the search service.
type FacultySearchCriteria struct {
	Query         string // ILIKE over full_name, headline, bio
	Country       string // equality
	Accreditation string // equality on aneca_accreditation
	Limit         int    // candidate cap, required
}

type FacultyRepository interface {
	Create(db *gorm.DB, profile *models.FacultyProfile) error
	FindByID(db *gorm.DB, id string) (*models.FacultyProfile, error)
	FindByUserID(db *gorm.DB, userID string) (*models.FacultyProfile, error)
	Update(db *gorm.DB, profile *models.FacultyProfile) error
	UpdateVisibility(db *gorm.DB, profileID string, mode models.VisibilityMode) error
	UpdateCompleteness(db *gorm.DB, profileID string, score int) error
	IncrementProfileViews(db *gorm.DB, profileID string) error
	SearchFacultyProfiles(db *gorm.DB, criteria FacultySearchCriteria) ([]models.FacultyProfile, error)
	CountAll(db *gorm.DB) (int64, error)
}

type FacultyRepositoryImpl struct{}

func NewFacultyRepository() FacultyRepository {
	return &FacultyRepositoryImpl{}
}

func (r *FacultyRepositoryImpl) Create(db *gorm.DB, profile *models.FacultyProfile) error {
	var existing models.FacultyProfile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *FacultyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.FacultyProfile, error) {
	var profile models.FacultyProfile
	err := db.Preload("Expertise").Preload("Documents").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *FacultyRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.FacultyProfile, error) {
	var profile models.FacultyProfile
	err := db.Preload("Expertise").Preload("Documents").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *FacultyRepositoryImpl) Update(db *gorm.DB, profile *models.FacultyProfile) error {
	result := db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *FacultyRepositoryImpl) UpdateVisibility(db *gorm.DB, profileID string, mode models.VisibilityMode) error {
	result := db.Model(&models.FacultyProfile{}).Where("id = ?", profileID).
		Update("visibility", mode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *FacultyRepositoryImpl) UpdateCompleteness(db *gorm.DB, profileID string, score int) error {
	return db.Model(&models.FacultyProfile{}).Where("id = ?", profileID).
		Update("completeness_score", score).Error
}

func (r *FacultyRepositoryImpl) IncrementProfileViews(db *gorm.DB, profileID string) error {
	return db.Model(&models.FacultyProfile{}).Where("id = ?", profileID).
		Update("profile_views", gorm.Expr("profile_views + 1")).Error
}

// SearchFacultyProfiles runs the coarse candidate query. Hidden profiles
// never leave the database; the caller re-checks visibility per candidate
// before anything is returned to a client.
func (r *FacultyRepositoryImpl) SearchFacultyProfiles(db *gorm.DB, criteria FacultySearchCriteria) ([]models.FacultyProfile, error) {
	query := db.Model(&models.FacultyProfile{}).
		Where("visibility IN ?", []models.VisibilityMode{
			models.VisibilityPublic,
			models.VisibilityInstitutionsOnly,
		})

	if criteria.Query != "" {
		like := fmt.Sprintf("%%%s%%", criteria.Query)
		query = query.Where(
			"full_name ILIKE ? OR headline ILIKE ? OR bio ILIKE ?",
			like, like, like,
		)
	}

	if criteria.Country != "" {
		query = query.Where("country = ?", criteria.Country)
	}

	if criteria.Accreditation != "" {
		query = query.Where("aneca_accreditation = ?", criteria.Accreditation)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 100
	}

	var profiles []models.FacultyProfile
	err := query.Preload("Expertise").
		Order("updated_at DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *FacultyRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.FacultyProfile{}).Count(&count).Error
	return count, err
}
