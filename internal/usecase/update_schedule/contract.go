package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
)

// OrganizationRepository интерфейс репозитория расписаний организаций
type OrganizationRepository interface {
	Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
