package get_date_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/availability"
	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	organizationRepo "github.com/m04kA/SMC-RouteAvailability/internal/infra/storage/organization"
)

// UseCase use case для получения доступных для записи дат организации
type UseCase struct {
	orgRepo      OrganizationRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором определяется "сегодня"
func NewUseCase(orgRepo OrganizationRepository, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		orgRepo:      orgRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDateAvailability: organization=%d", req.OrganizationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDateAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание организации
	org, err := uc.orgRepo.GetByID(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, organizationRepo.ErrOrganizationNotFound) {
			uc.logger.Warn("GetDateAvailability: organization id=%d not found", req.OrganizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("GetDateAvailability: failed to get organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	// 3. Окно записи пересчитывается при каждом вызове
	horizon := domain.NewHorizon(uc.timeProvider.Now().In(uc.location))
	dateAvailability := availability.ComputeDateAvailability(org.Schedule, horizon.Start, horizon.End)

	dates := horizon.Dates()
	entries := make([]DateEntry, 0, len(dates))
	selectable := 0
	for _, d := range dates {
		ok := dateAvailability.IsSelectable(d)
		if ok {
			selectable++
		}
		entries = append(entries, DateEntry{Date: d, Selectable: ok})
	}

	uc.logger.Info("GetDateAvailability: organization=%d, horizon=%s..%s, selectable=%d/%d",
		req.OrganizationID, horizon.Start.Format(domain.DateFormat), horizon.End.Format(domain.DateFormat),
		selectable, len(entries))

	return &Response{
		OrganizationID: req.OrganizationID,
		HorizonStart:   horizon.Start,
		HorizonEnd:     horizon.End,
		Dates:          entries,
	}, nil
}
