package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var (
	ErrInstitutionNotFound      = errors.New("institution not found")
	ErrInstitutionAlreadyExists = errors.New("institution already exists for this user")
)

type InstitutionRepository interface {
	Create(db *gorm.DB, institution *models.Institution) error
	FindByID(db *gorm.DB, id string) (*models.Institution, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Institution, error)
	Update(db *gorm.DB, institution *models.Institution) error
	Verify(db *gorm.DB, institutionID string) error
	CountAll(db *gorm.DB) (int64, error)
}

type InstitutionRepositoryImpl struct{}

func NewInstitutionRepository() InstitutionRepository {
	return &InstitutionRepositoryImpl{}
}

func (r *InstitutionRepositoryImpl) Create(db *gorm.DB, institution *models.Institution) error {
	var existing models.Institution
	if err := db.Where("user_id = ?", institution.UserID).First(&existing).Error; err == nil {
		return ErrInstitutionAlreadyExists
	}
	return db.Create(institution).Error
}

func (r *InstitutionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Institution, error) {
	var institution models.Institution
	err := db.First(&institution, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, err
	}
	return &institution, nil
}

func (r *InstitutionRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Institution, error) {
	var institution models.Institution
	err := db.Where("user_id = ?", userID).First(&institution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, err
	}
	return &institution, nil
}

func (r *InstitutionRepositoryImpl) Update(db *gorm.DB, institution *models.Institution) error {
	result := db.Save(institution)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInstitutionNotFound
	}
	return nil
}

func (r *InstitutionRepositoryImpl) Verify(db *gorm.DB, institutionID string) error {
	result := db.Model(&models.Institution{}).Where("id = ?", institutionID).
		Updates(map[string]interface{}{
			"is_verified": true,
			"status":      models.InstitutionStatusActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInstitutionNotFound
	}
	return nil
}

func (r *InstitutionRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Institution{}).Count(&count).Error
	return count, err
}
