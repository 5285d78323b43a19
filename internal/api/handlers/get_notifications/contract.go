package get_notifications

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/service/notifications/models"
)

type NotificationService interface {
	GetFeed(ctx context.Context, artistID int64) (*models.FeedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
