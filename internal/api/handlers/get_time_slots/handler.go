package get_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-RouteAvailability/internal/api/middleware"
	getTimeSlots "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_time_slots"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgInvalidRouteID        = "некорректный ID маршрута"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOrganizationNotFound  = "организация не найдена"
	msgRouteNotFound         = "маршрут не найден"
	msgRouteUnavailable      = "маршрут недоступен для записи"
	msgDateOutOfHorizon      = "дата вне окна записи"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/routes/{routeId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	organizationID, err := strconv.ParseInt(vars["organizationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Invalid organization ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	routeID, err := strconv.ParseInt(vars["routeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Invalid route ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRouteID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(organizationID, routeID, dateStr)
	if err != nil {
		h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getTimeSlots.ErrOrganizationNotFound):
			h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Organization not found: organization_id=%d", organizationID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		case errors.Is(err, getTimeSlots.ErrRouteNotFound),
			errors.Is(err, getTimeSlots.ErrRouteNotInOrganization):
			h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Route not found: organization_id=%d, route_id=%d",
				organizationID, routeID)
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, getTimeSlots.ErrRouteInactive),
			errors.Is(err, getTimeSlots.ErrInvalidRouteDuration):
			h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Route unavailable: route_id=%d, error=%v", routeID, err)
			handlers.RespondUnprocessable(w, msgRouteUnavailable)

		case errors.Is(err, getTimeSlots.ErrDateOutOfHorizon):
			h.logger.Warn("GET /organizations/{id}/routes/{id}/slots - Date out of horizon: date=%s", dateStr)
			handlers.RespondUnprocessable(w, msgDateOutOfHorizon)

		default:
			h.logger.Error("GET /organizations/{id}/routes/{id}/slots - Failed to get slots: organization_id=%d, route_id=%d, error=%v, request_id=%s",
				organizationID, routeID, err, middleware.RequestIDFromContext(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /organizations/{id}/routes/{id}/slots - Slots retrieved: organization_id=%d, route_id=%d, date=%s, slots_count=%d",
		organizationID, routeID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
