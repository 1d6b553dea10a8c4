package update_schedule

import (
	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	updateSchedule "github.com/m04kA/SMC-RouteAvailability/internal/usecase/update_schedule"
)

// UpdateScheduleRequest HTTP request model
// Пустая строка или null во времени означает выходной для категории дней
type UpdateScheduleRequest struct {
	Name              string   `json:"name"`
	TimeOpenWeekday   *string  `json:"timeOpenWeekday"`
	TimeCloseWeekday  *string  `json:"timeCloseWeekday"`
	TimeOpenSaturday  *string  `json:"timeOpenSaturday"`
	TimeCloseSaturday *string  `json:"timeCloseSaturday"`
	TimeOpenSunday    *string  `json:"timeOpenSunday"`
	TimeCloseSunday   *string  `json:"timeCloseSunday"`
	EnabledWeekdays   []string `json:"enabledWeekdays"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *UpdateScheduleRequest) ToUseCaseRequest(userID, organizationID int64) *updateSchedule.Request {
	return &updateSchedule.Request{
		UserID:            userID,
		OrganizationID:    organizationID,
		Name:              r.Name,
		TimeOpenWeekday:   r.TimeOpenWeekday,
		TimeCloseWeekday:  r.TimeCloseWeekday,
		TimeOpenSaturday:  r.TimeOpenSaturday,
		TimeCloseSaturday: r.TimeCloseSaturday,
		TimeOpenSunday:    r.TimeOpenSunday,
		TimeCloseSunday:   r.TimeCloseSunday,
		EnabledWeekdays:   r.EnabledWeekdays,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) handlers.ScheduleResponse {
	return handlers.NewScheduleResponse(resp.Organization)
}
