package get_working_hours

import (
	"net/http"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
)

const msgMissingArtistID = "отсутствует ID мастера"

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

// Handle GET /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("GET /working-hours - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	schedule, err := h.service.GetWorkingHours(r.Context(), artistID)
	if err != nil {
		h.logger.Error("GET /working-hours - Failed: artist_id=%d, error=%v", artistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /working-hours - Returned %d rules: artist_id=%d", len(schedule.Rules), artistID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
