package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var (
	ErrRuleNotFound      = errors.New("visibility rule not found")
	ErrRuleAlreadyExists = errors.New("visibility rule already exists for this pair")
)

type VisibilityRuleRepository interface {
	Create(db *gorm.DB, rule *models.VisibilityRule) error
	FindByID(db *gorm.DB, id string) (*models.VisibilityRule, error)
	FindByFacultyID(db *gorm.DB, facultyID string) ([]models.VisibilityRule, error)
	IsBlocked(db *gorm.DB, facultyID, institutionID string) (bool, error)
	// FindBlockedFacultyIDs fetches every faculty blocked for one
	// institution in a single query, for batch visibility checks.
	FindBlockedFacultyIDs(db *gorm.DB, institutionID string) ([]string, error)
	Delete(db *gorm.DB, id string) error
}

type VisibilityRuleRepositoryImpl struct{}

func NewVisibilityRuleRepository() VisibilityRuleRepository {
	return &VisibilityRuleRepositoryImpl{}
}

func (r *VisibilityRuleRepositoryImpl) Create(db *gorm.DB, rule *models.VisibilityRule) error {
	var existing models.VisibilityRule
	err := db.Where("faculty_id = ? AND institution_id = ?", rule.FacultyID, rule.InstitutionID).
		First(&existing).Error
	if err == nil {
		return ErrRuleAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(rule).Error
}

func (r *VisibilityRuleRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.VisibilityRule, error) {
	var rule models.VisibilityRule
	err := db.First(&rule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (r *VisibilityRuleRepositoryImpl) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.VisibilityRule, error) {
	var rules []models.VisibilityRule
	err := db.Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&rules).Error
	return rules, err
}

func (r *VisibilityRuleRepositoryImpl) IsBlocked(db *gorm.DB, facultyID, institutionID string) (bool, error) {
	var count int64
	err := db.Model(&models.VisibilityRule{}).
		Where("faculty_id = ? AND institution_id = ?", facultyID, institutionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VisibilityRuleRepositoryImpl) FindBlockedFacultyIDs(db *gorm.DB, institutionID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.VisibilityRule{}).
		Where("institution_id = ?", institutionID).
		Pluck("faculty_id", &ids).Error
	return ids, err
}

func (r *VisibilityRuleRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.VisibilityRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
