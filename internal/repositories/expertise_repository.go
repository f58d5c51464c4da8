package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var ErrExpertiseNotFound = errors.New("expertise entry not found")

type ExpertiseRepository interface {
	Create(db *gorm.DB, entry *models.ExpertiseEntry) error
	FindByID(db *gorm.DB, id string) (*models.ExpertiseEntry, error)
	FindByFacultyID(db *gorm.DB, facultyID string) ([]models.ExpertiseEntry, error)
	Delete(db *gorm.DB, id string) error
	CountByFacultyID(db *gorm.DB, facultyID string) (int64, error)
}

type ExpertiseRepositoryImpl struct{}

func NewExpertiseRepository() ExpertiseRepository {
	return &ExpertiseRepositoryImpl{}
}

func (r *ExpertiseRepositoryImpl) Create(db *gorm.DB, entry *models.ExpertiseEntry) error {
	return db.Create(entry).Error
}

func (r *ExpertiseRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ExpertiseEntry, error) {
	var entry models.ExpertiseEntry
	err := db.First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpertiseNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ExpertiseRepositoryImpl) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.ExpertiseEntry, error) {
	var entries []models.ExpertiseEntry
	err := db.Where("faculty_id = ?", facultyID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *ExpertiseRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.ExpertiseEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpertiseNotFound
	}
	return nil
}

func (r *ExpertiseRepositoryImpl) CountByFacultyID(db *gorm.DB, facultyID string) (int64, error) {
	var count int64
	err := db.Model(&models.ExpertiseEntry{}).
		Where("faculty_id = ?", facultyID).
		Count(&count).Error
	return count, err
}
