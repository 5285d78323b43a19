package create_booking

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
}

// ProjectRepository интерфейс репозитория проектов
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
	SetLastBooking(ctx context.Context, projectID, bookingID int64) error
}

// CatalogRepository интерфейс справочника студии
type CatalogRepository interface {
	GetArtist(ctx context.Context, id int64) (*domain.Artist, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
