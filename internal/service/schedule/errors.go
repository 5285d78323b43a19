package schedule

import "errors"

var (
	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")

	// ErrDuplicateWeekday возвращается, когда на один день недели передано несколько правил
	ErrDuplicateWeekday = errors.New("duplicate weekday in schedule")

	// ErrInvalidTimeRange возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
