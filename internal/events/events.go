package events

import "time"

// EventType тип доменного события
type EventType string

const (
	EventBookingCreated EventType = "booking.created"
	EventDepositPaid    EventType = "deposit.paid"
)

// Event доменное событие, публикуемое после успешного коммита основной записи.
// Обработка событий не влияет на результат породившей их операции.
type Event struct {
	Type       EventType
	ArtistID   int64
	BookingID  int64
	ProjectID  *int64
	OccurredAt time.Time
}
