package domain

// SlotStrideMinutes фиксированный шаг генерации слотов
// Не зависит от длительности услуги: слоты предлагаются плотно,
// соседние предложения могут пересекаться между собой
const SlotStrideMinutes = 15

// DefaultProjectTitle название проекта, создаваемого автоматически при бронировании
const DefaultProjectTitle = "New Booking Project"

// DefaultProjectDescription описание автоматически созданного проекта
const DefaultProjectDescription = "Auto-created from booking"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих интервал в расписании
var ActiveStatuses = []BookingStatus{
	StatusDepositDue,
	StatusConfirmed,
}

// InactiveStatuses статусы бронирований, не участвующих в проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusPending,
	StatusCompleted,
	StatusCancelled,
}
