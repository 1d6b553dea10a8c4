package get_schedule

import "github.com/m04kA/SMC-RouteAvailability/internal/domain"

// Request модель запроса расписания
type Request struct {
	OrganizationID int64
}

// Response расписание организации и маршруты, на которые открыта запись
type Response struct {
	Organization *domain.Organization
	Routes       []*domain.Route
}
