package domain

// Параметры окна бронирования
const (
	// BookingHorizonDays сколько дней после сегодняшнего доступно для записи (включительно)
	BookingHorizonDays = 14
)

// Бизнес-ограничения маршрутов
const (
	MinRouteDurationMinutes = 1
	MaxRouteDurationMinutes = 1440 // сутки
	MaxOrganizationNameLen  = 255
)

// DateFormat формат календарной даты в API и ключах доступности
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Разделители для представления слота
const (
	slotLabelSeparator = " a "
	slotValueSeparator = "-"
)
