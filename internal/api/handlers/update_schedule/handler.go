package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-RouteAvailability/internal/api/middleware"
	updateSchedule "github.com/m04kA/SMC-RouteAvailability/internal/usecase/update_schedule"
)

const (
	msgInvalidOrganizationID = "некорректный ID организации"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgUnauthorized          = "пользователь не авторизован"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/organizations/{organizationId}/schedule
// Требует X-User-ID (middleware.Auth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /organizations/{id}/schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	organizationID, err := strconv.ParseInt(mux.Vars(r)["organizationId"], 10, 64)
	if err != nil || organizationID <= 0 {
		h.logger.Warn("PUT /organizations/{id}/schedule - Invalid organization ID: %q", mux.Vars(r)["organizationId"])
		handlers.RespondBadRequest(w, msgInvalidOrganizationID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /organizations/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, organizationID))
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrInvalidInput),
			errors.Is(err, updateSchedule.ErrInvalidTime),
			errors.Is(err, updateSchedule.ErrInvalidWeekday),
			errors.Is(err, updateSchedule.ErrIncompleteHours):
			h.logger.Warn("PUT /organizations/{id}/schedule - Validation failed: organization_id=%d, error=%v", organizationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /organizations/{id}/schedule - Failed to update schedule: organization_id=%d, user_id=%d, error=%v, request_id=%s",
				organizationID, userID, err, middleware.RequestIDFromContext(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /organizations/{id}/schedule - Schedule updated: organization_id=%d, user_id=%d", organizationID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
