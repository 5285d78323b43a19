package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotReschedule возвращается для завершённых и отменённых бронирований
	ErrCannotReschedule = errors.New("booking cannot be rescheduled")

	// ErrSlotConflict возвращается, когда новый интервал пересекается с другим активным бронированием
	ErrSlotConflict = errors.New("slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
