package dto

import (
	"encoding/json"
	"time"

	"talentia_backend/internal/models"
)

type NotificationDTO struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Content   string            `json:"content,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Total         int64             `json:"total"`
	UnreadCount   int64             `json:"unread_count"`
}

func NewNotificationDTO(n *models.Notification) NotificationDTO {
	d := NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Content:   n.Content,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &d.Data)
	}
	return d
}
