package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
	"github.com/m04kA/TSM-StudioService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgMissingArtistID       = "отсутствует ID мастера"
	msgNotFound              = "уведомление не найдено"
)

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

// Handle PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	notificationID, err := strconv.ParseInt(vars["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/{id}/read - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	if err := h.service.MarkRead(r.Context(), artistID, notificationID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{id}/read - Not found: notification_id=%d, artist_id=%d",
				notificationID, artistID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Marked as read: notification_id=%d, artist_id=%d",
		notificationID, artistID)
	w.WriteHeader(http.StatusNoContent)
}
