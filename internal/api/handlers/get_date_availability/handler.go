package get_date_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-RouteAvailability/internal/api/middleware"
	getDateAvailability "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_date_availability"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgOrganizationNotFound  = "организация не найдена"
)

type Handler struct {
	useCase GetDateAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDateAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, err := strconv.ParseInt(mux.Vars(r)["organizationId"], 10, 64)
	if err != nil || organizationID <= 0 {
		h.logger.Warn("GET /organizations/{id}/availability - Invalid organization ID: %q", mux.Vars(r)["organizationId"])
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDateAvailability.Request{OrganizationID: organizationID})
	if err != nil {
		switch {
		case errors.Is(err, getDateAvailability.ErrOrganizationNotFound):
			h.logger.Warn("GET /organizations/{id}/availability - Organization not found: organization_id=%d", organizationID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		case errors.Is(err, getDateAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOrganizationID)

		default:
			h.logger.Error("GET /organizations/{id}/availability - Failed to get availability: organization_id=%d, error=%v, request_id=%s",
				organizationID, err, middleware.RequestIDFromContext(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /organizations/{id}/availability - Availability retrieved: organization_id=%d, dates=%d",
		organizationID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
