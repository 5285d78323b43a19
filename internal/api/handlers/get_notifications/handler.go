package get_notifications

import (
	"net/http"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
)

const msgMissingArtistID = "отсутствует ID мастера"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	feed, err := h.service.GetFeed(r.Context(), artistID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed: artist_id=%d, error=%v", artistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Returned %d notifications: artist_id=%d", len(feed.Notifications), artistID)
	handlers.RespondJSON(w, http.StatusOK, feed)
}
