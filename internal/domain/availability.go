package domain

import "time"

// Horizon диапазон дат [Start, End], доступный для записи. Обе границы - полночь
type Horizon struct {
	Start time.Time
	End   time.Time
}

// NewHorizon строит окно от сегодняшнего дня до сегодня + BookingHorizonDays в часовом поясе now
func NewHorizon(now time.Time) Horizon {
	start := TruncateToDate(now)
	return Horizon{
		Start: start,
		End:   start.AddDate(0, 0, BookingHorizonDays),
	}
}

// Contains проверяет, попадает ли календарная дата в окно
func (h Horizon) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, h.Start.Location())
	return !d.Before(h.Start) && !d.After(h.End)
}

// Dates возвращает все даты окна по порядку
func (h Horizon) Dates() []time.Time {
	if h.End.Before(h.Start) {
		return nil
	}
	dates := make([]time.Time, 0, BookingHorizonDays+1)
	for d := h.Start; !d.After(h.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// DateAvailability доступность дат окна: ключ - дата в формате YYYY-MM-DD
// Даты вне окна отсутствуют и считаются недоступными
type DateAvailability map[string]bool

// IsSelectable возвращает true только для дат окна, разрешенных для записи
func (a DateAvailability) IsSelectable(date time.Time) bool {
	return a[date.Format(DateFormat)]
}

// TruncateToDate обнуляет время, сохраняя часовой пояс
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
