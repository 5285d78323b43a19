package confirm_deposit

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	MarkDepositPaid(ctx context.Context, id int64) error
}

// ProjectRepository интерфейс репозитория проектов
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	Publish(event events.Event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
