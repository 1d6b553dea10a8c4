package update_schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
)

// UseCase use case для замены недельного расписания организации
type UseCase struct {
	orgRepo OrganizationRepository
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orgRepo OrganizationRepository, logger Logger) *UseCase {
	return &UseCase{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

// Execute валидирует и сохраняет расписание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: organization=%d by user=%d", req.OrganizationID, req.UserID)

	// 1. Валидация идентификаторов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбор времени и дней недели
	schedule, err := buildSchedule(req)
	if err != nil {
		uc.logger.Warn("UpdateSchedule: invalid schedule for organization=%d: %v", req.OrganizationID, err)
		return nil, err
	}

	// 3. Сохраняем
	saved, err := uc.orgRepo.Upsert(ctx, &domain.Organization{
		ID:       req.OrganizationID,
		Name:     strings.TrimSpace(req.Name),
		Schedule: schedule,
	})
	if err != nil {
		uc.logger.Error("UpdateSchedule: failed to save organization=%d: %v", req.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateSchedule: organization=%d saved, enabled weekdays=%v",
		saved.ID, saved.Schedule.EnabledWeekdays.Names())

	return &Response{
		Organization: saved,
	}, nil
}
