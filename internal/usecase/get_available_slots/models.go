package get_available_slots

import (
	"time"
)

// Request модель запроса на подбор свободных слотов
type Request struct {
	ArtistID  int64     // ID мастера, чье расписание просматривается
	ServiceID int64     // ID услуги, задающей длительность слота
	Date      time.Time // Дата подбора (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ArtistID        int64     // ID мастера
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность каждого слота
	Slots           []Slot    // Список свободных слотов
}

// Slot модель свободного временного слота.
// Границы хранятся полными моментами времени, наружу отдаются в RFC3339
type Slot struct {
	Start time.Time // Момент начала слота
	End   time.Time // Момент конца слота
}
