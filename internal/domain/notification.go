package domain

import "time"

// NotificationType классифицирует уведомления художника
type NotificationType string

const (
	NotificationBookingCreated NotificationType = "booking_created"
	NotificationDepositPaid    NotificationType = "deposit_paid"
)

// Notification персистентное уведомление в ленте художника
// Доставка во внешние каналы находится за границей сервиса
type Notification struct {
	ID         int64
	ArtistID   int64
	Type       NotificationType
	Title      string
	Body       string
	EntityType string // "booking", "project"
	EntityID   int64
	IsRead     bool
	CreatedAt  time.Time
}
