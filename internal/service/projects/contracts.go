package projects

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// ProjectRepository интерфейс репозитория проектов
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
