package domain

import "github.com/m04kA/SMC-RouteAvailability/pkg/types"

// TimeSlot интервал [Start, End), доступный для записи на маршрут
type TimeSlot struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// Label человекочитаемое представление, например "09:00 a 10:00"
func (s TimeSlot) Label() string {
	return s.Start.String() + slotLabelSeparator + s.End.String()
}

// Value машинное представление, например "09:00-10:00"
func (s TimeSlot) Value() string {
	return s.Start.String() + slotValueSeparator + s.End.String()
}

// DurationMinutes длина слота в минутах
func (s TimeSlot) DurationMinutes() int {
	return s.End.Sub(s.Start)
}
