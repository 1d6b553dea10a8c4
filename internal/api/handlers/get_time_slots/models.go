package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date                 string     `json:"date"`
	OrganizationID       int64      `json:"organizationId"`
	RouteID              int64      `json:"routeId"`
	RouteDurationMinutes int        `json:"routeDurationMinutes"`
	Selectable           bool       `json:"selectable"`
	Slots                []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Label     string `json:"label"` // "09:00 a 10:00"
	Value     string `json:"value"` // "09:00-10:00"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = TimeSlot{
			Label:     s.Label(),
			Value:     s.Value(),
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
		}
	}

	return &TimeSlotsResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		OrganizationID:       resp.OrganizationID,
		RouteID:              resp.RouteID,
		RouteDurationMinutes: resp.RouteDurationMinutes,
		Selectable:           resp.Selectable,
		Slots:                slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(organizationID, routeID int64, dateStr string) (*getTimeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getTimeSlots.Request{
		OrganizationID: organizationID,
		RouteID:        routeID,
		Date:           date,
	}, nil
}
