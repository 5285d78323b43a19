package confirm_deposit

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition возвращается, когда бронирование уже в терминальном статусе
	ErrInvalidTransition = errors.New("booking is not awaiting a deposit")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
