package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type InvitationRepository interface {
	Create(db *gorm.DB, invitation *models.Invitation) error
	FindByID(db *gorm.DB, id string) (*models.Invitation, error)
	FindByToken(db *gorm.DB, token string) (*models.Invitation, error)
	FindByFacultyID(db *gorm.DB, facultyID string) ([]models.Invitation, error)
	Revoke(db *gorm.DB, id string, at time.Time) error
	// DeleteExpiredBefore drops invitations whose expiry passed before the
	// cutoff. Recently expired rows stay so faculty can still see them.
	DeleteExpiredBefore(db *gorm.DB, cutoff time.Time) (int64, error)
}

type InvitationRepositoryImpl struct{}

func NewInvitationRepository() InvitationRepository {
	return &InvitationRepositoryImpl{}
}

func (r *InvitationRepositoryImpl) Create(db *gorm.DB, invitation *models.Invitation) error {
	return db.Create(invitation).Error
}

func (r *InvitationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := db.First(&invitation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := db.Where("token = ?", token).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepositoryImpl) FindByFacultyID(db *gorm.DB, facultyID string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := db.Where("faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepositoryImpl) Revoke(db *gorm.DB, id string, at time.Time) error {
	result := db.Model(&models.Invitation{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

func (r *InvitationRepositoryImpl) DeleteExpiredBefore(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("expires_at < ?", cutoff).Delete(&models.Invitation{})
	return result.RowsAffected, result.Error
}
