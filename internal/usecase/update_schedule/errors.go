package update_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime возвращается, когда время не в формате HH:MM
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")

	// ErrInvalidWeekday возвращается для неизвестного названия дня недели
	ErrInvalidWeekday = errors.New("invalid weekday name")

	// ErrIncompleteHours возвращается, когда задан только один конец интервала работы
	ErrIncompleteHours = errors.New("opening hours require both open and close time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
