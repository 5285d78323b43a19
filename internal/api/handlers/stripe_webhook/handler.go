package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/integrations/payments"
	confirmDeposit "github.com/m04kA/TSM-StudioService/internal/usecase/confirm_deposit"
)

// maxBodyBytes ограничивает тело вебхука, события провайдера небольшие
const maxBodyBytes = int64(65536)

const (
	msgUnreadableBody   = "не удалось прочитать тело запроса"
	msgInvalidSignature = "подпись события не прошла проверку"
	msgMalformedEvent   = "некорректное событие"
)

type Handler struct {
	paymentsClient PaymentsClient
	useCase        ConfirmDepositUseCase
	logger         Logger
}

func NewHandler(paymentsClient PaymentsClient, useCase ConfirmDepositUseCase, logger Logger) *Handler {
	return &Handler{
		paymentsClient: paymentsClient,
		useCase:        useCase,
		logger:         logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Подпись проверяется до любого изменения состояния. Ответы 2xx гасят ретраи
// провайдера, поэтому невосстановимые ситуации подтверждаются, а не отклоняются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgUnreadableBody)
		return
	}

	confirmation, err := h.paymentsClient.ParseWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrSignatureVerification):
			h.logger.Warn("POST /payments/webhook - Signature verification failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, payments.ErrIgnoredEvent):
			h.logger.Info("POST /payments/webhook - Ignored event: %v", err)
			w.WriteHeader(http.StatusOK)

		default:
			h.logger.Warn("POST /payments/webhook - Malformed event: %v", err)
			handlers.RespondBadRequest(w, msgMalformedEvent)
		}
		return
	}

	err = h.useCase.Execute(r.Context(), &confirmDeposit.Request{
		BookingID: confirmation.BookingID,
		EventID:   confirmation.EventID,
		EventType: confirmation.EventType,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmDeposit.ErrBookingNotFound):
			// Ретрай не поможет, событие подтверждаем
			h.logger.Warn("POST /payments/webhook - Booking not found: booking_id=%d, event=%s",
				confirmation.BookingID, confirmation.EventID)
			w.WriteHeader(http.StatusOK)

		case errors.Is(err, confirmDeposit.ErrInvalidTransition):
			h.logger.Warn("POST /payments/webhook - Booking in terminal status: booking_id=%d, event=%s",
				confirmation.BookingID, confirmation.EventID)
			w.WriteHeader(http.StatusOK)

		default:
			h.logger.Error("POST /payments/webhook - Failed to confirm deposit: booking_id=%d, error=%v",
				confirmation.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Deposit confirmed: booking_id=%d, event=%s",
		confirmation.BookingID, confirmation.EventID)
	w.WriteHeader(http.StatusOK)
}
