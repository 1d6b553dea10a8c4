package domain

import "time"

// Organization организация, проводящая маршруты
type Organization struct {
	ID        int64
	Name      string
	Schedule  WeeklySchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Route маршрут организации
type Route struct {
	ID              int64
	OrganizationID  int64
	Name            string
	DurationMinutes int
	MaxVisitors     int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BelongsTo проверяет принадлежность маршрута организации
func (r *Route) BelongsTo(organizationID int64) bool {
	return r.OrganizationID == organizationID
}

// HasValidDuration true, если длительность маршрута положительна и не превышает сутки
func (r *Route) HasValidDuration() bool {
	return r.DurationMinutes >= MinRouteDurationMinutes && r.DurationMinutes <= MaxRouteDurationMinutes
}
