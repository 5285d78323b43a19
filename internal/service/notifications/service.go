package notifications

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/notification"
	"github.com/m04kA/TSM-StudioService/internal/service/notifications/models"
)

// feedLimit сколько последних уведомлений отдается в ленте
const feedLimit = 20

// Service сервис ленты уведомлений мастера
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetFeed получает последние уведомления мастера и счётчик непрочитанных
func (s *Service) GetFeed(ctx context.Context, artistID int64) (*models.FeedResponse, error) {
	s.logger.Info("GetFeed: fetching notifications for artist=%d", artistID)

	notifications, err := s.notificationRepo.ListByArtist(ctx, artistID, feedLimit)
	if err != nil {
		s.logger.Error("GetFeed: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: GetFeed - repository error: %v", ErrInternal, err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, artistID)
	if err != nil {
		s.logger.Error("GetFeed: failed to count unread for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: GetFeed - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications, unread), nil
}

// MarkRead помечает уведомление мастера прочитанным
func (s *Service) MarkRead(ctx context.Context, artistID, notificationID int64) error {
	s.logger.Info("MarkRead: marking notification id=%d as read for artist=%d", notificationID, artistID)

	if err := s.notificationRepo.MarkRead(ctx, artistID, notificationID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for artist=%d", notificationID, artistID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", notificationID, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
