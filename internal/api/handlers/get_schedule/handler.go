package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-RouteAvailability/internal/api/middleware"
	getSchedule "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_schedule"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgOrganizationNotFound  = "организация не найдена"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/organizations/{organizationId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizationID, err := strconv.ParseInt(mux.Vars(r)["organizationId"], 10, 64)
	if err != nil || organizationID <= 0 {
		h.logger.Warn("GET /organizations/{id}/schedule - Invalid organization ID: %q", mux.Vars(r)["organizationId"])
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{OrganizationID: organizationID})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrOrganizationNotFound):
			h.logger.Warn("GET /organizations/{id}/schedule - Organization not found: organization_id=%d", organizationID)
			handlers.RespondNotFound(w, msgOrganizationNotFound)

		case errors.Is(err, getSchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOrganizationID)

		default:
			h.logger.Error("GET /organizations/{id}/schedule - Failed to get schedule: organization_id=%d, error=%v, request_id=%s",
				organizationID, err, middleware.RequestIDFromContext(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /organizations/{id}/schedule - Schedule retrieved: organization_id=%d, routes=%d",
		organizationID, len(result.Routes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
