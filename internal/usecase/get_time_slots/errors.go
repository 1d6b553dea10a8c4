package get_time_slots

import "errors"

var (
	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = errors.New("route not found")

	// ErrRouteNotInOrganization возвращается, когда маршрут принадлежит другой организации
	ErrRouteNotInOrganization = errors.New("route does not belong to organization")

	// ErrRouteInactive возвращается для маршрута, снятого с записи
	ErrRouteInactive = errors.New("route is not active")

	// ErrInvalidRouteDuration возвращается, когда у маршрута некорректная длительность
	ErrInvalidRouteDuration = errors.New("route has invalid duration")

	// ErrDateOutOfHorizon возвращается для даты вне окна записи
	ErrDateOutOfHorizon = errors.New("date is outside of booking horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
