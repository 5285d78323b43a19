package domain

import (
	"time"

	"github.com/m04kA/TSM-StudioService/pkg/types"
)

// Artist represents a studio artist owning a schedule
type Artist struct {
	ID        int64
	Name      string
	Email     *string
	CreatedAt time.Time
}

// Client represents a studio client
type Client struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	CreatedAt time.Time
}

// Service represents a bookable service with a fixed duration and deposit
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	DepositAmount   float64
	CreatedAt       time.Time
}

// WorkingHoursRule is a per-weekday open/close window for an artist.
// Configured via settings, read-only at booking time.
// Invariant: StartTime < EndTime.
type WorkingHoursRule struct {
	ID        int64
	ArtistID  int64
	Weekday   int // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}
