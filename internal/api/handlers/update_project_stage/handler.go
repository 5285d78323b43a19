package update_project_stage

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/service/projects"
	"github.com/m04kA/TSM-StudioService/internal/service/projects/models"
)

const (
	msgInvalidProjectID   = "некорректный ID проекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "проект не найден"
	msgInvalidStage       = "неизвестная стадия проекта"
	msgStageMoveBackward  = "стадию проекта нельзя откатить назад"
)

type Handler struct {
	service ProjectService
	logger  Logger
}

func NewHandler(service ProjectService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/projects/{projectId}/stage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /projects/{id}/stage - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	var req models.UpdateStageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /projects/{id}/stage - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStage(r.Context(), projectID, &req)
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrProjectNotFound):
			h.logger.Warn("PATCH /projects/{id}/stage - Project not found: project_id=%d", projectID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, projects.ErrInvalidStage):
			h.logger.Warn("PATCH /projects/{id}/stage - Invalid stage %q: project_id=%d", req.Stage, projectID)
			handlers.RespondBadRequest(w, msgInvalidStage)

		case errors.Is(err, projects.ErrStageMoveBackward):
			h.logger.Warn("PATCH /projects/{id}/stage - Backward transition to %q: project_id=%d", req.Stage, projectID)
			handlers.RespondConflict(w, msgStageMoveBackward)

		default:
			h.logger.Error("PATCH /projects/{id}/stage - Failed: project_id=%d, error=%v", projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /projects/{id}/stage - Stage updated: project_id=%d, stage=%s", projectID, result.Stage)
	handlers.RespondJSON(w, http.StatusOK, result)
}
