package payments

import "errors"

var (
	// ErrCreateSession возвращается при ошибке создания платежной сессии
	ErrCreateSession = errors.New("payments.client: failed to create checkout session")

	// ErrSignatureVerification возвращается, когда подпись вебхука не прошла проверку
	ErrSignatureVerification = errors.New("payments.client: webhook signature verification failed")

	// ErrIgnoredEvent возвращается для типов событий, которые сервис не обрабатывает
	ErrIgnoredEvent = errors.New("payments.client: ignored event type")

	// ErrNoBookingID возвращается, когда в метаданных события нет ссылки на бронирование
	ErrNoBookingID = errors.New("payments.client: event carries no booking id")

	// ErrParseEvent возвращается при ошибке разбора тела события
	ErrParseEvent = errors.New("payments.client: failed to parse event payload")
)
