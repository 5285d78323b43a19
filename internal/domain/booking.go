package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	// StatusPending is a legacy status kept for old rows; no transition leads into it
	StatusPending BookingStatus = "pending"

	StatusDepositDue BookingStatus = "deposit_due"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// bookingTransitions is the closed transition table for booking statuses.
// Statuses are stored as text, but the service layer rejects any transition
// not listed here. There is no way out of completed or cancelled.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusCancelled},
	StatusDepositDue: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid returns true if s is a known booking status
func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo returns true if the transition s -> target is allowed
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Booking represents a reserved time interval on an artist's schedule
type Booking struct {
	ID        int64
	ArtistID  int64
	ClientID  int64
	ServiceID int64
	ProjectID *int64 // weak reference, the project does not own the booking

	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	DepositAmount float64
	DepositPaid   bool
	DepositLink   *string

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its interval on the schedule.
// Only active bookings participate in conflict detection.
func (b *Booking) IsActive() bool {
	return b.Status == StatusDepositDue || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking's interval may still be moved
func (b *Booking) CanBeRescheduled() bool {
	return b.IsActive()
}

// Interval returns the booking's [start, end) interval
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// ArtistBookingsFilter фильтр для выборки бронирований художника
type ArtistBookingsFilter struct {
	ArtistID        int64          // Обязательный параметр
	From            *time.Time     // Начало периода (опционально)
	To              *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершённые и отменённые
}
