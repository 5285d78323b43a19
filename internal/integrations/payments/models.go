package payments

// DepositCharge данные для выставления депозита по бронированию
type DepositCharge struct {
	BookingID   int64
	Amount      float64 // в основной валюте, конвертируется в минорные единицы
	Description string
	ClientEmail *string
}

// PaymentLink созданная платежная ссылка
type PaymentLink struct {
	URL       string
	SessionID string
}

// DepositConfirmation подтверждение оплаты депозита, извлеченное из вебхука
type DepositConfirmation struct {
	BookingID int64
	EventID   string
	EventType string
}
