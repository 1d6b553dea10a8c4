package update_schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

// validateRequest валидирует идентификаторы и название
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.OrganizationID <= 0 {
		return fmt.Errorf("%w: organizationID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(name) > domain.MaxOrganizationNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxOrganizationNameLen)
	}

	return nil
}

// buildSchedule разбирает строки запроса в расписание. Вся работа со строковым временем заканчивается здесь
func buildSchedule(req *Request) (domain.WeeklySchedule, error) {
	var schedule domain.WeeklySchedule

	pairs := []struct {
		category      domain.DayCategory
		open, closeAt *string
		target        *domain.OpeningHours
	}{
		{domain.CategoryWeekday, req.TimeOpenWeekday, req.TimeCloseWeekday, &schedule.Weekday},
		{domain.CategorySaturday, req.TimeOpenSaturday, req.TimeCloseSaturday, &schedule.Saturday},
		{domain.CategorySunday, req.TimeOpenSunday, req.TimeCloseSunday, &schedule.Sunday},
	}

	for _, p := range pairs {
		hours, err := parseHours(p.open, p.closeAt)
		if err != nil {
			return schedule, fmt.Errorf("%s: %w", p.category, err)
		}
		*p.target = hours
	}

	enabled, err := domain.ParseWeekdaySet(req.EnabledWeekdays)
	if err != nil {
		return schedule, fmt.Errorf("%w: %v", ErrInvalidWeekday, err)
	}
	schedule.EnabledWeekdays = enabled

	if err := schedule.Validate(); err != nil {
		if errors.Is(err, domain.ErrIncompleteHours) {
			return schedule, ErrIncompleteHours
		}
		return schedule, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return schedule, nil
}

func parseHours(open, closeAt *string) (domain.OpeningHours, error) {
	var (
		hours domain.OpeningHours
		err   error
	)
	if hours.Open, err = parseOptionalTime(open); err != nil {
		return hours, err
	}
	if hours.Close, err = parseOptionalTime(closeAt); err != nil {
		return hours, err
	}
	if (hours.Open == nil) != (hours.Close == nil) {
		return hours, ErrIncompleteHours
	}
	return hours, nil
}

// parseOptionalTime пустая строка равнозначна отсутствию времени
func parseOptionalTime(s *string) (*types.TimeOfDay, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := types.ParseTimeOfDay(strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, *s)
	}
	return &t, nil
}
