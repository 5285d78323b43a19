package create_payment_link

// Request модель запроса на создание платежной ссылки на депозит
type Request struct {
	BookingID int64 // ID бронирования
	ArtistID  int64 // ID мастера, владеющего бронированием
}

// Response модель ответа с платежной ссылкой
type Response struct {
	BookingID int64   `json:"bookingId"`
	URL       string  `json:"url"`
	Amount    float64 `json:"amount"`
}
