package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
)

// Request модель запроса слотов маршрута на дату
type Request struct {
	OrganizationID int64
	RouteID        int64
	Date           time.Time // Календарная дата, время игнорируется
}

// Response слоты на дату по возрастанию времени начала
type Response struct {
	OrganizationID       int64
	RouteID              int64
	Date                 time.Time
	RouteDurationMinutes int
	// Selectable принимает ли организация записи в этот день недели
	// Слоты считаются только по часам работы и от этого флага не зависят
	Selectable bool
	Slots      []domain.TimeSlot
}
