package services

import (
	"gorm.io/gorm"

	"talentia_backend/internal/repositories"
	"talentia_backend/internal/services/dto"
	"talentia_backend/pkg/apperrors"
)

type NotificationService interface {
	List(db *gorm.DB, userID string, limit, offset int) (*dto.NotificationListResponse, error)
	MarkAsRead(db *gorm.DB, userID, notificationID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(db *gorm.DB, userID string, limit, offset int) (*dto.NotificationListResponse, error) {
	notifications, total, err := s.notificationRepo.FindByUserID(db, userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationDTO, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationDTO(&notifications[i]))
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationServiceImpl) MarkAsRead(db *gorm.DB, userID, notificationID string) error {
	// Scope the update to the caller's rows; marking another user's
	// notification must look like not-found.
	scoped := db.Where("user_id = ?", userID)
	if err := s.notificationRepo.MarkAsRead(scoped, notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
