package get_schedule

import (
	"context"
	"errors"
	"fmt"

	organizationRepo "github.com/m04kA/SMC-RouteAvailability/internal/infra/storage/organization"
)

// UseCase use case для получения расписания организации
type UseCase struct {
	orgRepo   OrganizationRepository
	routeRepo RouteRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orgRepo OrganizationRepository, routeRepo RouteRepository, logger Logger) *UseCase {
	return &UseCase{
		orgRepo:   orgRepo,
		routeRepo: routeRepo,
		logger:    logger,
	}
}

// Execute возвращает расписание и активные маршруты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.OrganizationID <= 0 {
		return nil, fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	org, err := uc.orgRepo.GetByID(ctx, req.OrganizationID)
	if err != nil {
		if errors.Is(err, organizationRepo.ErrOrganizationNotFound) {
			uc.logger.Warn("GetSchedule: organization id=%d not found", req.OrganizationID)
			return nil, ErrOrganizationNotFound
		}
		uc.logger.Error("GetSchedule: failed to get organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	routes, err := uc.routeRepo.ListByOrganization(ctx, req.OrganizationID, true)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list routes of organization id=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to list routes: %v", ErrInternal, err)
	}

	uc.logger.Info("GetSchedule: organization=%d, active routes=%d", req.OrganizationID, len(routes))

	return &Response{
		Organization: org,
		Routes:       routes,
	}, nil
}
