package domain

import (
	"fmt"
	"time"
)

// weekdayOrder порядок дней недели для вывода (с понедельника)
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ParseWeekday разбирает английское название дня недели ("Monday" ... "Sunday")
func ParseWeekday(name string) (time.Weekday, error) {
	for _, wd := range weekdayOrder {
		if wd.String() == name {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

// WeekdaySet множество дней недели, в которые организация принимает записи
type WeekdaySet map[time.Weekday]struct{}

// NewWeekdaySet создает множество из перечисленных дней
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// ParseWeekdaySet разбирает список названий дней. Повторы допускаются
func ParseWeekdaySet(names []string) (WeekdaySet, error) {
	set := make(WeekdaySet, len(names))
	for _, name := range names {
		wd, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		set[wd] = struct{}{}
	}
	return set, nil
}

// Contains проверяет, входит ли день в множество
func (s WeekdaySet) Contains(day time.Weekday) bool {
	_, ok := s[day]
	return ok
}

// Names возвращает названия дней в порядке Monday..Sunday
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, len(s))
	for _, wd := range weekdayOrder {
		if s.Contains(wd) {
			names = append(names, wd.String())
		}
	}
	return names
}
