package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"talentia_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification types
const (
	NotificationTypeRequest = "request"
	NotificationTypeSystem  = "system"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByUserID(db *gorm.DB, userID string, limit, offset int) ([]models.Notification, int64, error)
	MarkAsRead(db *gorm.DB, id string) error
	GetUnreadCount(db *gorm.DB, userID string) (int64, error)

	// Factory for the contact-request notification
	CreateContactNotification(db *gorm.DB, userID, contactID, institutionID, institutionName string) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUserID(db *gorm.DB, userID string, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id string) error {
	result := db.Model(&models.Notification{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) CreateContactNotification(db *gorm.DB, userID, contactID, institutionID, institutionName string) error {
	data, err := json.Marshal(map[string]string{
		"contact_id":     contactID,
		"institution_id": institutionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification data: %w", err)
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    NotificationTypeRequest,
		Title:   "New contact request",
		Content: fmt.Sprintf("%s sent you a contact request", institutionName),
		Data:    datatypes.JSON(data),
	}
	return db.Create(notification).Error
}
