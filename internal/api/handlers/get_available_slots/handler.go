package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/TSM-StudioService/internal/api/handlers"
	"github.com/m04kA/TSM-StudioService/internal/domain"
	getAvailableSlots "github.com/m04kA/TSM-StudioService/internal/usecase/get_available_slots"
)

const (
	msgInvalidArtistID  = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/available-slots?serviceId={id}&date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artists/{id}/available-slots - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /artists/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /artists/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ArtistID:  artistID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /artists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /artists/{id}/available-slots - Failed: artist_id=%d, error=%v", artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{id}/available-slots - Returned %d slots: artist_id=%d, service_id=%d",
		len(result.Slots), artistID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
