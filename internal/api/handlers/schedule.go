package handlers

import (
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

// ScheduleResponse недельное расписание организации в формате API
// Отсутствующее время сериализуется как null
type ScheduleResponse struct {
	OrganizationID    int64            `json:"organizationId"`
	Name              string           `json:"name"`
	TimeOpenWeekday   *types.TimeOfDay `json:"timeOpenWeekday"`
	TimeCloseWeekday  *types.TimeOfDay `json:"timeCloseWeekday"`
	TimeOpenSaturday  *types.TimeOfDay `json:"timeOpenSaturday"`
	TimeCloseSaturday *types.TimeOfDay `json:"timeCloseSaturday"`
	TimeOpenSunday    *types.TimeOfDay `json:"timeOpenSunday"`
	TimeCloseSunday   *types.TimeOfDay `json:"timeCloseSunday"`
	EnabledWeekdays   []string         `json:"enabledWeekdays"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// NewScheduleResponse собирает ScheduleResponse из доменной организации
func NewScheduleResponse(org *domain.Organization) ScheduleResponse {
	s := org.Schedule
	return ScheduleResponse{
		OrganizationID:    org.ID,
		Name:              org.Name,
		TimeOpenWeekday:   s.Weekday.Open,
		TimeCloseWeekday:  s.Weekday.Close,
		TimeOpenSaturday:  s.Saturday.Open,
		TimeCloseSaturday: s.Saturday.Close,
		TimeOpenSunday:    s.Sunday.Open,
		TimeCloseSunday:   s.Sunday.Close,
		EnabledWeekdays:   s.EnabledWeekdays.Names(),
		UpdatedAt:         org.UpdatedAt,
	}
}
