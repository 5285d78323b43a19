package update_project_stage

import (
	"context"

	"github.com/m04kA/TSM-StudioService/internal/service/projects/models"
)

type ProjectService interface {
	UpdateStage(ctx context.Context, projectID int64, req *models.UpdateStageRequest) (*models.ProjectResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
