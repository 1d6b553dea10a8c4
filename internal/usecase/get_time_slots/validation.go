package get_time_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	if req.RouteID <= 0 {
		return fmt.Errorf("%w: routeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateRoute проверяет, что по маршруту можно строить слоты для организации
func validateRoute(route *domain.Route, organizationID int64) error {
	if !route.BelongsTo(organizationID) {
		return ErrRouteNotInOrganization
	}

	if !route.IsActive {
		return ErrRouteInactive
	}

	if !route.HasValidDuration() {
		return fmt.Errorf("%w: %d minutes", ErrInvalidRouteDuration, route.DurationMinutes)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно записи
func validateDate(date time.Time, horizon domain.Horizon) error {
	if !horizon.Contains(date) {
		return fmt.Errorf("%w: %s not in %s..%s", ErrDateOutOfHorizon,
			date.Format(domain.DateFormat),
			horizon.Start.Format(domain.DateFormat),
			horizon.End.Format(domain.DateFormat))
	}
	return nil
}
