package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
	createBooking "github.com/m04kA/TSM-StudioService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingArtistID    = "отсутствует ID мастера"
	msgSlotConflict       = "выбранный интервал пересекается с существующей записью"
	msgArtistNotFound     = "мастер не найден"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgProjectNotFound    = "проект не найден"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(artistID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: artist_id=%d, date=%s, time=%s",
				artistID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrArtistNotFound):
			h.logger.Warn("POST /bookings - Artist not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrProjectNotFound):
			h.logger.Warn("POST /bookings - Project not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, artist_id=%d", result.ID, artistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
