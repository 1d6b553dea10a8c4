package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	timeLayout     = "15:04"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOverflow возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("types: time of day overflow")
)

// TimeOfDay время суток с точностью до минуты (00:00 - 23:59)
// Хранится как количество минут от полуночи, чтобы сравнение и сложение были точными
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay{minutes: hour*minutesPerHour + minute}, nil
}

// MustTimeOfDay как ParseTimeOfDay, но паникует на некорректной строке
// Используется для констант и в тестах
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay разбирает строку формата HH:MM (24 часа)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len(timeLayout) {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return NewTimeOfDay(parsed.Hour(), parsed.Minute())
}

// Hour часы
func (t TimeOfDay) Hour() int {
	return t.minutes / minutesPerHour
}

// Minute минуты
func (t TimeOfDay) Minute() int {
	return t.minutes % minutesPerHour
}

// Minutes количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь считается ошибкой
func (t TimeOfDay) AddMinutes(n int) (TimeOfDay, error) {
	result := t.minutes + n
	if result < 0 || result >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s + %d min", ErrTimeOverflow, t, n)
	}
	return TimeOfDay{minutes: result}, nil
}

// Sub разница t - other в минутах
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return t.minutes - other.minutes
}

// IsBefore true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// IsAfter true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// String форматирует как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON сериализует в строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON разбирает строку "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer, в БД время хранится строкой HH:MM
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// NullTimeOfDay TimeOfDay, который может быть NULL в БД
// Пустая строка в колонке тоже считается отсутствием значения
type NullTimeOfDay struct {
	TimeOfDay TimeOfDay
	Valid     bool
}

// NewNullTimeOfDay nil превращается в NULL
func NewNullTimeOfDay(t *TimeOfDay) NullTimeOfDay {
	if t == nil {
		return NullTimeOfDay{}
	}
	return NullTimeOfDay{TimeOfDay: *t, Valid: true}
}

// Ptr возвращает nil для NULL
func (n NullTimeOfDay) Ptr() *TimeOfDay {
	if !n.Valid {
		return nil
	}
	t := n.TimeOfDay
	return &t
}

// Scan реализует sql.Scanner
func (n *NullTimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = NullTimeOfDay{}
		return nil
	case string:
		if v == "" {
			*n = NullTimeOfDay{}
			return nil
		}
	case []byte:
		if len(v) == 0 {
			*n = NullTimeOfDay{}
			return nil
		}
	}
	if err := n.TimeOfDay.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value реализует driver.Valuer
func (n NullTimeOfDay) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.TimeOfDay.Value()
}
