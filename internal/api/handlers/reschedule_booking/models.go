package reschedule_booking

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	rescheduleBooking "github.com/m04kA/TSM-StudioService/internal/usecase/reschedule_booking"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "14:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID, artistID int64) (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		ArtistID:  artistID,
		Date:      date,
		StartTime: startTime,
	}, nil
}
