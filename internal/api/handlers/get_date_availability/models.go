package get_date_availability

import (
	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	getDateAvailability "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_date_availability"
)

// DateAvailabilityResponse HTTP response model
type DateAvailabilityResponse struct {
	OrganizationID int64           `json:"organizationId"`
	HorizonStart   string          `json:"horizonStart"`
	HorizonEnd     string          `json:"horizonEnd"`
	Dates          []DateEntry     `json:"dates"`
	Availability   map[string]bool `json:"availability"`
}

// DateEntry дата окна записи
type DateEntry struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Selectable bool   `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Availability дублирует Dates в виде словаря дата -> флаг для календарных виджетов
func FromUseCaseResponse(resp *getDateAvailability.Response) *DateAvailabilityResponse {
	dates := make([]DateEntry, len(resp.Dates))
	availability := make(map[string]bool, len(resp.Dates))
	for i, d := range resp.Dates {
		date := d.Date.Format(domain.DateFormat)
		dates[i] = DateEntry{
			Date:       date,
			Weekday:    d.Date.Weekday().String(),
			Selectable: d.Selectable,
		}
		availability[date] = d.Selectable
	}

	return &DateAvailabilityResponse{
		OrganizationID: resp.OrganizationID,
		HorizonStart:   resp.HorizonStart.Format(domain.DateFormat),
		HorizonEnd:     resp.HorizonEnd.Format(domain.DateFormat),
		Dates:          dates,
		Availability:   availability,
	}
}
