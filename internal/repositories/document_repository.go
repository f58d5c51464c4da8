package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(db *gorm.DB, document *models.FacultyDocument) error
	FindByID(db *gorm.DB, id string) (*models.FacultyDocument, error)
	FindByFacultyID(db *gorm.DB, facultyID string) ([]models.FacultyDocument, error)
	Delete(db *gorm.DB, id string) error
	CountByFacultyID(db *gorm.DB, facultyID string) (int64, error)
}

type DocumentRepositoryImpl struct{}

func NewDocumentRepository() DocumentRepository {
	return &DocumentRepositoryImpl{}
}

func (r *DocumentRepositoryImpl) Create(db *gorm.DB, document *models.FacultyDocument) error {
	return db.Create(document).Error
}

func (r *DocumentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.FacultyDocument, error) {
	var document models.FacultyDocument
	err := db.First(&document, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.FacultyDocument, error) {
	var documents []models.FacultyDocument
	err := db.Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.FacultyDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) CountByFacultyID(db *gorm.DB, facultyID string) (int64, error) {
	var count int64
	err := db.Model(&models.FacultyDocument{}).
		Where("faculty_id = ?", facultyID).
		Count(&count).Error
	return count, err
}
