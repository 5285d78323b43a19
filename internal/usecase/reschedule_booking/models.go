package reschedule_booking

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64            // ID переносимого бронирования
	ArtistID  int64            // ID мастера, владеющего бронированием
	Date      time.Time        // Новая дата сеанса (без времени)
	StartTime types.TimeString // Новое время начала, например "14:30"
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artistId"`
	ClientID  int64  `json:"clientId"`
	ServiceID int64  `json:"serviceId"`
	ProjectID *int64 `json:"projectId,omitempty"`
	StartTime string `json:"startTime"` // ISO 8601, UTC
	EndTime   string `json:"endTime"`   // ISO 8601, UTC
	Status    string `json:"status"`
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		ArtistID:  b.ArtistID,
		ClientID:  b.ClientID,
		ServiceID: b.ServiceID,
		ProjectID: b.ProjectID,
		StartTime: b.StartTime.UTC().Format(time.RFC3339),
		EndTime:   b.EndTime.UTC().Format(time.RFC3339),
		Status:    string(b.Status),
	}
}
