package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
	"github.com/m04kA/TSM-StudioService/internal/service/schedule"
	"github.com/m04kA/TSM-StudioService/internal/service/schedule/models"
)

const (
	msgMissingArtistID    = "отсутствует ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeekday     = "день недели должен быть в диапазоне 0-6"
	msgDuplicateWeekday   = "день недели указан более одного раза"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidTimeFormat  = "время должно быть в формате HH:MM"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("PUT /working-hours - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	var req models.UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWorkingHours(r.Context(), artistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeekday):
			h.logger.Warn("PUT /working-hours - Invalid weekday: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, schedule.ErrDuplicateWeekday):
			h.logger.Warn("PUT /working-hours - Duplicate weekday: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /working-hours - Invalid time range: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidTimeFormat):
			h.logger.Warn("PUT /working-hours - Invalid time format: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		default:
			h.logger.Error("PUT /working-hours - Failed: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours - Schedule replaced: artist_id=%d, rules=%d", artistID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
