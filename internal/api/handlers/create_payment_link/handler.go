package create_payment_link

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
	createPaymentLink "github.com/m04kA/TSM-StudioService/internal/usecase/create_payment_link"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingArtistID  = "отсутствует ID мастера"
	msgNotFound         = "бронирование не найдено"
	msgDepositNotDue    = "по бронированию не ожидается депозит"
	msgProviderError    = "платежный сервис временно недоступен"
)

type Handler struct {
	useCase CreatePaymentLinkUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentLinkUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment-link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-link - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	artistID, ok := middleware.GetArtistID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/payment-link - Missing artist ID")
		handlers.RespondUnauthorized(w, msgMissingArtistID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentLink.Request{
		BookingID: bookingID,
		ArtistID:  artistID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentLink.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment-link - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createPaymentLink.ErrDepositNotDue):
			h.logger.Warn("POST /bookings/{id}/payment-link - Deposit not due: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDepositNotDue)

		case errors.Is(err, createPaymentLink.ErrPaymentProvider):
			h.logger.Error("POST /bookings/{id}/payment-link - Provider error: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		default:
			h.logger.Error("POST /bookings/{id}/payment-link - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment-link - Link created: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
