package create_booking

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ArtistID  int64            // ID мастера, в чье расписание пишется бронирование
	ClientID  int64            // ID клиента
	ServiceID int64            // ID услуги, задающей длительность и депозит
	ProjectID *int64           // ID существующего проекта (опционально)
	Date      time.Time        // Дата сеанса (без времени)
	StartTime types.TimeString // Время начала сеанса, например "14:30"
	Notes     *string          // Заметки мастера (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64   `json:"id"`
	ArtistID      int64   `json:"artistId"`
	ClientID      int64   `json:"clientId"`
	ServiceID     int64   `json:"serviceId"`
	ProjectID     *int64  `json:"projectId,omitempty"`
	StartTime     string  `json:"startTime"` // ISO 8601, UTC
	EndTime       string  `json:"endTime"`   // ISO 8601, UTC
	Status        string  `json:"status"`
	DepositAmount float64 `json:"depositAmount"`
	DepositPaid   bool    `json:"depositPaid"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		ArtistID:      b.ArtistID,
		ClientID:      b.ClientID,
		ServiceID:     b.ServiceID,
		ProjectID:     b.ProjectID,
		StartTime:     b.StartTime.UTC().Format(time.RFC3339),
		EndTime:       b.EndTime.UTC().Format(time.RFC3339),
		Status:        string(b.Status),
		DepositAmount: b.DepositAmount,
		DepositPaid:   b.DepositPaid,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
