package schedule

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	ListByArtist(ctx context.Context, artistID int64) ([]*domain.WorkingHoursRule, error)
	ReplaceForArtist(ctx context.Context, artistID int64, rules []*domain.WorkingHoursRule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
