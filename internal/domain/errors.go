package domain

import "errors"

var (
	// ErrUnknownWeekday возвращается для названия дня недели не из списка Monday..Sunday
	ErrUnknownWeekday = errors.New("domain: unknown weekday name")

	// ErrIncompleteHours возвращается, когда задано только время открытия или только время закрытия
	ErrIncompleteHours = errors.New("domain: opening hours must define both open and close time")
)
