package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactRepository interface {
	Create(db *gorm.DB, contact *models.Contact) error
	FindByID(db *gorm.DB, id string) (*models.Contact, error)
	FindByFacultyID(db *gorm.DB, facultyID string) ([]models.Contact, error)
	FindByInstitutionID(db *gorm.DB, institutionID string) ([]models.Contact, error)
	UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error
}

type ContactRepositoryImpl struct{}

func NewContactRepository() ContactRepository {
	return &ContactRepositoryImpl{}
}

func (r *ContactRepositoryImpl) Create(db *gorm.DB, contact *models.Contact) error {
	return db.Create(contact).Error
}

func (r *ContactRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Contact, error) {
	var contact models.Contact
	err := db.Preload("Institution").First(&contact, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := db.Preload("Institution").
		Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepositoryImpl) FindByInstitutionID(db *gorm.DB, institutionID string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := db.Where("institution_id = ?", institutionID).
		Order("created_at DESC").
		Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ContactStatus) error {
	result := db.Model(&models.Contact{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
