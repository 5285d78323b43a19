package get_artist_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/service/bookings"
	"github.com/m04kA/TSM-StudioService/internal/service/bookings/models"
)

const (
	msgMissingArtistID = "отсутствует ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter   = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?from={date}&to={date}&status={status}&includeInactive={bool}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	req := &models.GetArtistBookingsRequest{
		ArtistID:        artistID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// Верхняя граница фильтра не включается, сдвигаем на следующий день
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.GetArtistBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings: artist_id=%d", len(result.Bookings), artistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
