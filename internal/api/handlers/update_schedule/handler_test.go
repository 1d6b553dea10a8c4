package update_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RouteAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-RouteAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	updateSchedule "github.com/m04kA/SMC-RouteAvailability/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-RouteAvailability/pkg/logger"
	"github.com/m04kA/SMC-RouteAvailability/pkg/ptr"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

type stubUseCase struct {
	resp *updateSchedule.Response
	err  error
	req  *updateSchedule.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *updateSchedule.Request) (*updateSchedule.Response, error) {
	s.req = req
	return s.resp, s.err
}

func newRequest(body string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/organizations/9/schedule", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"organizationId": "9"})
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

const validBody = `{
	"name": "Museo",
	"timeOpenWeekday": "09:00",
	"timeCloseWeekday": "17:00",
	"timeOpenSaturday": null,
	"timeCloseSaturday": null,
	"enabledWeekdays": ["Monday", "Saturday"]
}`

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &updateSchedule.Response{Organization: &domain.Organization{
		ID:   9,
		Name: "Museo",
		Schedule: domain.WeeklySchedule{
			Weekday: domain.OpeningHours{
				Open:  ptr.Ptr(types.MustTimeOfDay("09:00")),
				Close: ptr.Ptr(types.MustTimeOfDay("17:00")),
			},
			EnabledWeekdays: domain.NewWeekdaySet(time.Monday, time.Saturday),
		},
	}}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(validBody, 42))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, int64(42), uc.req.UserID)
	assert.Equal(t, int64(9), uc.req.OrganizationID)
	assert.Equal(t, "09:00", *uc.req.TimeOpenWeekday)
	assert.Nil(t, uc.req.TimeOpenSaturday)
	assert.Nil(t, uc.req.TimeOpenSunday)
	assert.Equal(t, []string{"Monday", "Saturday"}, uc.req.EnabledWeekdays)

	var body handlers.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.OrganizationID)
	assert.Equal(t, []string{"Monday", "Saturday"}, body.EnabledWeekdays)
	require.NotNil(t, body.TimeOpenWeekday)
	assert.Equal(t, "09:00", body.TimeOpenWeekday.String())
	assert.Equal(t, "17:00", body.TimeCloseWeekday.String())
	assert.Nil(t, body.TimeOpenSunday)
	assert.Contains(t, rec.Body.String(), `"timeOpenSunday":null`)
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &stubUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(validBody, 0))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_InvalidBody(t *testing.T) {
	bodies := []string{
		`not json`,
		`{"name": "x", "unknown": 1}`,
		`{"name": "x"} {"name": "y"}`,
	}

	for _, body := range bodies {
		uc := &stubUseCase{}
		rec := httptest.NewRecorder()
		NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(body, 1))

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, uc.req)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: updateSchedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: updateSchedule.ErrInvalidTime, wantStatus: http.StatusBadRequest},
		{err: updateSchedule.ErrInvalidWeekday, wantStatus: http.StatusBadRequest},
		{err: updateSchedule.ErrIncompleteHours, wantStatus: http.StatusBadRequest},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &stubUseCase{err: fmt.Errorf("%w: details", tt.err)}
			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(validBody, 1))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
