package create_payment_link

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDepositNotDue возвращается, когда по бронированию не ожидается депозит
	ErrDepositNotDue = errors.New("booking is not awaiting a deposit")

	// ErrPaymentProvider возвращается при ошибке платежного провайдера
	ErrPaymentProvider = errors.New("payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
