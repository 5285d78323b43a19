package notifications

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByArtist(ctx context.Context, artistID int64, limit uint64) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, artistID int64) (int64, error)
	MarkRead(ctx context.Context, artistID, notificationID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
