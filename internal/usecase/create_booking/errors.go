package create_booking

import "errors"

var (
	// ErrArtistNotFound возвращается, когда мастер не найден
	ErrArtistNotFound = errors.New("artist not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrProjectNotFound возвращается, когда указанный проект не найден
	ErrProjectNotFound = errors.New("project not found")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным бронированием.
	// Проверка выполняется внутри сериализуемой транзакции, параллельный коммит
	// того же интервала получает эту же ошибку, а не двойную запись.
	ErrSlotConflict = errors.New("slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
