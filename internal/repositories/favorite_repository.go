package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	Find(db *gorm.DB, institutionID, facultyID string) (*models.Favorite, error)
	Create(db *gorm.DB, favorite *models.Favorite) error
	Delete(db *gorm.DB, institutionID, facultyID string) error
	FindByInstitutionID(db *gorm.DB, institutionID string) ([]models.Favorite, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

func (r *FavoriteRepositoryImpl) Find(db *gorm.DB, institutionID, facultyID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := db.Where("institution_id = ? AND faculty_id = ?", institutionID, facultyID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepositoryImpl) Create(db *gorm.DB, favorite *models.Favorite) error {
	return db.Create(favorite).Error
}

func (r *FavoriteRepositoryImpl) Delete(db *gorm.DB, institutionID, facultyID string) error {
	result := db.Where("institution_id = ? AND faculty_id = ?", institutionID, facultyID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindByInstitutionID(db *gorm.DB, institutionID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := db.Where("institution_id = ?", institutionID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
