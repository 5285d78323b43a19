package bookings

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CountActiveSiblings(ctx context.Context, projectID, excludeBookingID int64) (int64, error)
}

// ProjectRepository интерфейс репозитория проектов
type ProjectRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
