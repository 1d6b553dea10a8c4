package get_date_availability

import "time"

// Request модель запроса доступности дат
type Request struct {
	OrganizationID int64
}

// Response даты окна записи с признаком доступности, по возрастанию
type Response struct {
	OrganizationID int64
	HorizonStart   time.Time
	HorizonEnd     time.Time
	Dates          []DateEntry
}

// DateEntry одна дата окна
type DateEntry struct {
	Date       time.Time
	Selectable bool
}
