package get_available_slots

import (
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

// generateSlots генерирует свободные слоты внутри рабочего дня мастера.
// Курсор идет от начала рабочего дня с фиксированным шагом, кандидат
// берется в работу, пока его конец помещается в рабочие часы. Кандидаты,
// пересекающиеся с занятыми интервалами, отбрасываются.
//
// Шаг меньше длительности услуги: соседние предложения пересекаются между
// собой, это даёт клиенту плотную сетку времени начала.
func generateSlots(dayStart, dayEnd time.Time, durationMinutes int, busy []domain.Interval) []domain.Slot {
	slots := make([]domain.Slot, 0)

	duration := time.Duration(durationMinutes) * time.Minute
	stride := domain.SlotStrideMinutes * time.Minute

	for cursor := dayStart; !cursor.Add(duration).After(dayEnd); cursor = cursor.Add(stride) {
		candidate := domain.Interval{Start: cursor, End: cursor.Add(duration)}

		if domain.HasConflict(candidate, busy) {
			continue
		}

		slots = append(slots, domain.Slot{Start: candidate.Start, End: candidate.End})
	}

	return slots
}

// dayBounds возвращает границы календарного дня в UTC
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
