package domain

import (
	"time"

	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

// DayCategory категория дня, для которой задаются часы работы
type DayCategory string

const (
	CategoryWeekday  DayCategory = "weekday" // понедельник - пятница
	CategorySaturday DayCategory = "saturday"
	CategorySunday   DayCategory = "sunday"
)

// CategoryOf определяет категорию дня для даты
func CategoryOf(date time.Time) DayCategory {
	switch date.Weekday() {
	case time.Saturday:
		return CategorySaturday
	case time.Sunday:
		return CategorySunday
	default:
		return CategoryWeekday
	}
}

// OpeningHours часы работы для одной категории дней
// nil в любом из полей означает, что в этот день организация не работает
type OpeningHours struct {
	Open  *types.TimeOfDay
	Close *types.TimeOfDay
}

// IsDefined true, если заданы оба конца интервала
func (h OpeningHours) IsDefined() bool {
	return h.Open != nil && h.Close != nil
}

// Validate проверяет, что оба конца либо заданы, либо отсутствуют
func (h OpeningHours) Validate() error {
	if (h.Open == nil) != (h.Close == nil) {
		return ErrIncompleteHours
	}
	return nil
}

// WeeklySchedule недельное расписание организации
// Часы работы и EnabledWeekdays - независимые условия: день может иметь часы, но быть выключен для записи, и наоборот
type WeeklySchedule struct {
	Weekday         OpeningHours
	Saturday        OpeningHours
	Sunday          OpeningHours
	EnabledWeekdays WeekdaySet
}

// HoursFor возвращает часы работы, применимые к дате
func (s WeeklySchedule) HoursFor(date time.Time) OpeningHours {
	switch CategoryOf(date) {
	case CategorySaturday:
		return s.Saturday
	case CategorySunday:
		return s.Sunday
	default:
		return s.Weekday
	}
}

// IsEnabled проверяет, принимает ли организация записи в день недели даты
func (s WeeklySchedule) IsEnabled(date time.Time) bool {
	return s.EnabledWeekdays.Contains(date.Weekday())
}

// Validate проверяет согласованность всех пар часов работы
func (s WeeklySchedule) Validate() error {
	for _, h := range []OpeningHours{s.Weekday, s.Saturday, s.Sunday} {
		if err := h.Validate(); err != nil {
			return err
		}
	}
	return nil
}
