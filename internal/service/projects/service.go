package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	projectRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/project"
	"github.com/m04kA/TSM-StudioService/internal/service/projects/models"
)

// Service сервис для работы с проектами клиентов
type Service struct {
	projectRepo ProjectRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса проектов
func NewService(projectRepo ProjectRepository, logger Logger) *Service {
	return &Service{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// GetByID получает проект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProjectResponse, error) {
	s.logger.Info("GetByID: fetching project id=%d", id)

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			s.logger.Warn("GetByID: project id=%d not found", id)
			return nil, ErrProjectNotFound
		}
		s.logger.Error("GetByID: repository error for project id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProject(project), nil
}

// UpdateStage переводит проект на новую стадию пайплайна.
// Разрешено только движение вперёд, откат стадии отклоняется.
func (s *Service) UpdateStage(ctx context.Context, projectID int64, req *models.UpdateStageRequest) (*models.ProjectResponse, error) {
	s.logger.Info("UpdateStage: updating project id=%d to stage=%s", projectID, req.Stage)

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			s.logger.Warn("UpdateStage: project id=%d not found", projectID)
			return nil, ErrProjectNotFound
		}
		s.logger.Error("UpdateStage: repository error for project id=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: UpdateStage - repository error: %v", ErrInternal, err)
	}

	newStage := domain.ProjectStatus(req.Stage)
	if !newStage.IsValid() {
		s.logger.Warn("UpdateStage: invalid stage=%s for project id=%d", req.Stage, projectID)
		return nil, ErrInvalidStage
	}

	if !project.Status.CanAdvanceTo(newStage) {
		s.logger.Warn("UpdateStage: transition %s -> %s rejected for project id=%d", project.Status, newStage, projectID)
		return nil, ErrStageMoveBackward
	}

	if err := s.projectRepo.UpdateStatus(ctx, projectID, newStage); err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("UpdateStage: repository error for project id=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: UpdateStage - repository error: %v", ErrInternal, err)
	}

	project.Status = newStage

	s.logger.Info("UpdateStage: project id=%d moved to stage=%s", projectID, newStage)
	return models.FromDomainProject(project), nil
}
