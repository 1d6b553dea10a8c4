package get_time_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-RouteAvailability/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-RouteAvailability/pkg/logger"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

type stubUseCase struct {
	resp *getTimeSlots.Response
	err  error
	req  *getTimeSlots.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *getTimeSlots.Request) (*getTimeSlots.Response, error) {
	s.req = req
	return s.resp, s.err
}

func serve(h *Handler, organizationID, routeID, date string) *httptest.ResponseRecorder {
	target := fmt.Sprintf("/api/v1/organizations/%s/routes/%s/slots", organizationID, routeID)
	if date != "" {
		target += "?date=" + date
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{
		"organizationId": organizationID,
		"routeId":        routeID,
	})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &getTimeSlots.Response{
		OrganizationID:       1,
		RouteID:              2,
		Date:                 time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		RouteDurationMinutes: 60,
		Selectable:           true,
		Slots: []domain.TimeSlot{
			{Start: types.MustTimeOfDay("09:00"), End: types.MustTimeOfDay("10:00")},
			{Start: types.MustTimeOfDay("10:00"), End: types.MustTimeOfDay("11:00")},
		},
	}}

	rec := serve(NewHandler(uc, logger.NewNop()), "1", "2", "2026-10-19")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, int64(1), uc.req.OrganizationID)
	assert.Equal(t, int64(2), uc.req.RouteID)
	assert.Equal(t, "2026-10-19", uc.req.Date.Format(domain.DateFormat))

	var body TimeSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-19", body.Date)
	assert.True(t, body.Selectable)
	assert.Equal(t, []TimeSlot{
		{Label: "09:00 a 10:00", Value: "09:00-10:00", StartTime: "09:00", EndTime: "10:00"},
		{Label: "10:00 a 11:00", Value: "10:00-11:00", StartTime: "10:00", EndTime: "11:00"},
	}, body.Slots)
}

func TestHandle_EmptySlotsSerializedAsArray(t *testing.T) {
	uc := &stubUseCase{resp: &getTimeSlots.Response{
		Date:  time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC),
		Slots: []domain.TimeSlot{},
	}}

	rec := serve(NewHandler(uc, logger.NewNop()), "1", "2", "2026-10-18")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name  string
		orgID string
		route string
		date  string
	}{
		{name: "bad organization", orgID: "x", route: "2", date: "2026-10-19"},
		{name: "bad route", orgID: "1", route: "y", date: "2026-10-19"},
		{name: "missing date", orgID: "1", route: "2"},
		{name: "bad date", orgID: "1", route: "2", date: "19.10.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			rec := serve(NewHandler(uc, logger.NewNop()), tt.orgID, tt.route, tt.date)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: getTimeSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: getTimeSlots.ErrOrganizationNotFound, wantStatus: http.StatusNotFound},
		{err: getTimeSlots.ErrRouteNotFound, wantStatus: http.StatusNotFound},
		{err: getTimeSlots.ErrRouteNotInOrganization, wantStatus: http.StatusNotFound},
		{err: getTimeSlots.ErrRouteInactive, wantStatus: http.StatusUnprocessableEntity},
		{err: getTimeSlots.ErrInvalidRouteDuration, wantStatus: http.StatusUnprocessableEntity},
		{err: getTimeSlots.ErrDateOutOfHorizon, wantStatus: http.StatusUnprocessableEntity},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &stubUseCase{err: fmt.Errorf("%w: wrapped", tt.err)}
			rec := serve(NewHandler(uc, logger.NewNop()), "1", "2", "2026-10-19")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
