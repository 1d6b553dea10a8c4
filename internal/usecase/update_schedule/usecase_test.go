package update_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/logger"
	"github.com/m04kA/SMC-RouteAvailability/pkg/ptr"
)

type stubOrgRepo struct {
	saved *domain.Organization
	err   error
}

func (s *stubOrgRepo) Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.saved = org
	result := *org
	result.UpdatedAt = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	return &result, nil
}

func validRequest() *Request {
	return &Request{
		UserID:            42,
		OrganizationID:    7,
		Name:              "  Torres Trekking ",
		TimeOpenWeekday:   ptr.Ptr("09:00"),
		TimeCloseWeekday:  ptr.Ptr("18:00"),
		TimeOpenSaturday:  ptr.Ptr("09:00"),
		TimeCloseSaturday: ptr.Ptr("14:00"),
		TimeOpenSunday:    ptr.Ptr(""),
		EnabledWeekdays:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	}
}

func TestExecute_SavesParsedSchedule(t *testing.T) {
	repo := &stubOrgRepo{}
	uc := NewUseCase(repo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.saved)
	assert.Equal(t, "Torres Trekking", repo.saved.Name)
	assert.Equal(t, "14:00", repo.saved.Schedule.Saturday.Close.String())
	assert.False(t, repo.saved.Schedule.Sunday.IsDefined())
	assert.True(t, repo.saved.Schedule.EnabledWeekdays.Contains(time.Saturday))
	assert.False(t, repo.saved.Schedule.EnabledWeekdays.Contains(time.Sunday))
	assert.False(t, resp.Organization.UpdatedAt.IsZero())
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "no user", mutate: func(r *Request) { r.UserID = 0 }, wantErr: ErrInvalidInput},
		{name: "no organization", mutate: func(r *Request) { r.OrganizationID = -1 }, wantErr: ErrInvalidInput},
		{name: "blank name", mutate: func(r *Request) { r.Name = "   " }, wantErr: ErrInvalidInput},
		{name: "bad time", mutate: func(r *Request) { r.TimeOpenWeekday = ptr.Ptr("9:00") }, wantErr: ErrInvalidTime},
		{name: "only close", mutate: func(r *Request) { r.TimeOpenSaturday = nil }, wantErr: ErrIncompleteHours},
		{name: "only open", mutate: func(r *Request) { r.TimeOpenSunday = ptr.Ptr("10:00") }, wantErr: ErrIncompleteHours},
		{name: "unknown weekday", mutate: func(r *Request) { r.EnabledWeekdays = []string{"Lunes"} }, wantErr: ErrInvalidWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubOrgRepo{}
			uc := NewUseCase(repo, logger.NewNop())
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.saved)
		})
	}
}

func TestExecute_OpenAfterCloseIsAccepted(t *testing.T) {
	repo := &stubOrgRepo{}
	uc := NewUseCase(repo, logger.NewNop())
	req := validRequest()
	req.TimeOpenWeekday = ptr.Ptr("18:00")
	req.TimeCloseWeekday = ptr.Ptr("09:00")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	uc := NewUseCase(&stubOrgRepo{err: errors.New("deadlock")}, logger.NewNop())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
