package update_schedule

import "github.com/m04kA/SMC-RouteAvailability/internal/domain"

// Request полная замена расписания организации
// Отсутствующее (nil) время означает, что в эту категорию дней организация не работает
type Request struct {
	UserID            int64
	OrganizationID    int64
	Name              string
	TimeOpenWeekday   *string
	TimeCloseWeekday  *string
	TimeOpenSaturday  *string
	TimeCloseSaturday *string
	TimeOpenSunday    *string
	TimeCloseSunday   *string
	EnabledWeekdays   []string
}

// Response сохраненное расписание
type Response struct {
	Organization *domain.Organization
}
