package models

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// NotificationResponse уведомление в ленте мастера
type NotificationResponse struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FeedResponse лента уведомлений со счётчиком непрочитанных
type FeedResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Body:       n.Body,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification, unreadCount int64) *FeedResponse {
	resp := &FeedResponse{
		Notifications: make([]NotificationResponse, len(notifications)),
		UnreadCount:   unreadCount,
	}

	for i, n := range notifications {
		resp.Notifications[i] = FromDomainNotification(n)
	}

	return resp
}
