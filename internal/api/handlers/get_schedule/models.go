package get_schedule

import (
	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_schedule"
)

// GetScheduleResponse HTTP response model
type GetScheduleResponse struct {
	handlers.ScheduleResponse
	Routes []RouteResponse `json:"routes"`
}

// RouteResponse активный маршрут организации
type RouteResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	MaxVisitors     int    `json:"maxVisitors"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *GetScheduleResponse {
	routes := make([]RouteResponse, len(resp.Routes))
	for i, r := range resp.Routes {
		routes[i] = RouteResponse{
			ID:              r.ID,
			Name:            r.Name,
			DurationMinutes: r.DurationMinutes,
			MaxVisitors:     r.MaxVisitors,
		}
	}

	return &GetScheduleResponse{
		ScheduleResponse: handlers.NewScheduleResponse(resp.Organization),
		Routes:           routes,
	}
}
