package get_available_slots

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	getAvailableSlots "github.com/m04kA/TSM-StudioService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель свободного слота.
// Границы отдаются полными моментами времени в RFC3339
type SlotResponse struct {
	Start string `json:"start"` // "2025-10-15T10:00:00Z"
	End   string `json:"end"`   // "2025-10-15T11:00:00Z"
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2025-10-15"
	ArtistID        int64          `json:"artistId"`
	ServiceID       int64          `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ArtistID:        resp.ArtistID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		}
	}

	return out
}
