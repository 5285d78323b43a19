package get_available_slots

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс справочника услуг
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetByArtistAndWeekday(ctx context.Context, artistID int64, weekday int) (*domain.WorkingHoursRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
