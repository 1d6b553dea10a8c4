package get_time_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/availability"
	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	organizationRepo "github.com/m04kA/SMC-RouteAvailability/internal/infra/storage/organization"
	routeRepo "github.com/m04kA/SMC-RouteAvailability/internal/infra/storage/route"
)

// UseCase use case для получения слотов маршрута на выбранную дату
type UseCase struct {
	orgRepo      OrganizationRepository
	routeRepo    RouteRepository
	observer     SlotsObserver
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orgRepo OrganizationRepository,
	routeRepo RouteRepository,
	observer SlotsObserver,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		orgRepo:      orgRepo,
		routeRepo:    routeRepo,
		observer:     observer,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: organization=%d, route=%d, date=%s",
		req.OrganizationID, req.RouteID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата из запроса - календарная, переносим ее в часовой пояс сервиса
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	horizon := domain.NewHorizon(uc.timeProvider.Now().In(uc.location))
	if err := validateDate(date, horizon); err != nil {
		uc.logger.Warn("GetTimeSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем расписание организации
	org, err := uc.orgRepo.GetByID(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, organizationRepo.ErrOrganizationNotFound) {
			uc.logger.Warn("GetTimeSlots: organization id=%d not found", req.OrganizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	// 4. Получаем маршрут
	route, err := uc.routeRepo.GetByID(ctx, req.RouteID)
	if err != nil {
		if errors.Is(err, routeRepo.ErrRouteNotFound) {
			uc.logger.Warn("GetTimeSlots: route id=%d not found", req.RouteID)
			return nil, ErrRouteNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get route id=%d: %v", req.RouteID, err)
		return nil, fmt.Errorf("%w: failed to get route: %v", ErrInternal, err)
	}

	// 5. Длительность проверяется до расчета: калькулятор паникует на неположительной
	if err := validateRoute(route, req.OrganizationID); err != nil {
		uc.logger.Warn("GetTimeSlots: route id=%d rejected: %v", req.RouteID, err)
		return nil, err
	}

	// 6. Генерируем слоты
	slots := availability.ComputeTimeSlots(org.Schedule, date, route.DurationMinutes)
	uc.observer.ObserveSlots(string(domain.CategoryOf(date)), len(slots))

	uc.logger.Info("GetTimeSlots: generated %d slots for organization=%d, route=%d, date=%s",
		len(slots), req.OrganizationID, req.RouteID, date.Format(domain.DateFormat))

	return &Response{
		OrganizationID:       req.OrganizationID,
		RouteID:              req.RouteID,
		Date:                 date,
		RouteDurationMinutes: route.DurationMinutes,
		Selectable:           org.Schedule.IsEnabled(date),
		Slots:                slots,
	}, nil
}
