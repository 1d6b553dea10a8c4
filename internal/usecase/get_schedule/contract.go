package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
)

// OrganizationRepository интерфейс репозитория расписаний организаций
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
}

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	ListByOrganization(ctx context.Context, organizationID int64, onlyActive bool) ([]*domain.Route, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
