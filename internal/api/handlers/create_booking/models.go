package create_booking

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	createBooking "github.com/m04kA/TSM-StudioService/internal/usecase/create_booking"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID  int64   `json:"clientId"`
	ServiceID int64   `json:"serviceId"`
	ProjectID *int64  `json:"projectId,omitempty"`
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "14:30"
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	ArtistID      int64   `json:"artistId"`
	ClientID      int64   `json:"clientId"`
	ServiceID     int64   `json:"serviceId"`
	ProjectID     *int64  `json:"projectId,omitempty"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	DepositAmount float64 `json:"depositAmount"`
	DepositPaid   bool    `json:"depositPaid"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(artistID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ArtistID:  artistID,
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		ProjectID: r.ProjectID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ArtistID:      resp.ArtistID,
		ClientID:      resp.ClientID,
		ServiceID:     resp.ServiceID,
		ProjectID:     resp.ProjectID,
		StartTime:     resp.StartTime,
		EndTime:       resp.EndTime,
		Status:        resp.Status,
		DepositAmount: resp.DepositAmount,
		DepositPaid:   resp.DepositPaid,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
