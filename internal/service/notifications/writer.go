package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/events"
)

// Writer подписчик доменных событий, складывающий уведомления в ленту мастера.
// Запись лучших усилий: ошибка записи логируется и не влияет на породившую операцию.
type Writer struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewWriter создает подписчика уведомлений
func NewWriter(notificationRepo NotificationRepository, logger Logger) *Writer {
	return &Writer{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Handle обрабатывает доменное событие
func (w *Writer) Handle(ctx context.Context, event events.Event) {
	notification, ok := w.build(event)
	if !ok {
		return
	}

	if _, err := w.notificationRepo.Create(ctx, notification); err != nil {
		w.logger.Error("notifications.Writer: failed to store %s for booking %d: %v", event.Type, event.BookingID, err)
		return
	}

	w.logger.Info("notifications.Writer: stored %s for artist=%d", event.Type, event.ArtistID)
}

func (w *Writer) build(event events.Event) (*domain.Notification, bool) {
	switch event.Type {
	case events.EventBookingCreated:
		return &domain.Notification{
			ArtistID:   event.ArtistID,
			Type:       domain.NotificationBookingCreated,
			Title:      "Новая запись",
			Body:       fmt.Sprintf("Создано бронирование #%d, ожидается депозит", event.BookingID),
			EntityType: "booking",
			EntityID:   event.BookingID,
		}, true
	case events.EventDepositPaid:
		return &domain.Notification{
			ArtistID:   event.ArtistID,
			Type:       domain.NotificationDepositPaid,
			Title:      "Депозит оплачен",
			Body:       fmt.Sprintf("Бронирование #%d подтверждено, депозит получен", event.BookingID),
			EntityType: "booking",
			EntityID:   event.BookingID,
		}, true
	default:
		w.logger.Warn("notifications.Writer: unknown event type %s", event.Type)
		return nil, false
	}
}
