package confirm_deposit

// Request модель запроса на подтверждение оплаты депозита.
// Формируется из проверенного вебхука платежного провайдера.
type Request struct {
	BookingID int64  // ID бронирования из метаданных платежа
	EventID   string // ID события провайдера (для логов)
	EventType string // Тип события провайдера (для логов)
}
