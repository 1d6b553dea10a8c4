package organization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

const tableName = "organization_schedules"

var columns = []string{
	"organization_id",
	"name",
	"time_open_weekday",
	"time_close_weekday",
	"time_open_saturday",
	"time_close_saturday",
	"time_open_sunday",
	"time_close_sunday",
	"enabled_weekdays",
	"created_at",
	"updated_at",
}

// Repository репозиторий расписаний организаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает организацию с расписанием
// Время работы хранится строками HH:MM и разбирается при сканировании, один раз на границе с БД
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"organization_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		row                  scheduleRow
		createdAt, updatedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&row.OrganizationID,
		&row.Name,
		&row.OpenWeekday,
		&row.CloseWeekday,
		&row.OpenSaturday,
		&row.CloseSaturday,
		&row.OpenSunday,
		&row.CloseSunday,
		pq.Array(&row.EnabledWeekdays),
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrganizationNotFound
	}
	if errors.Is(err, types.ErrInvalidTimeFormat) {
		return nil, fmt.Errorf("%w: GetByID - organization id=%d: %v", ErrInvalidStoredValue, id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan organization: %v", ErrScanRow, err)
	}

	org, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - organization id=%d: %v", ErrInvalidStoredValue, id, err)
	}
	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time

	return org, nil
}

// Upsert создает или полностью перезаписывает расписание организации
func (r *Repository) Upsert(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	row := fromDomain(org)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"organization_id",
			"name",
			"time_open_weekday",
			"time_close_weekday",
			"time_open_saturday",
			"time_close_saturday",
			"time_open_sunday",
			"time_close_sunday",
			"enabled_weekdays",
		).
		Values(
			row.OrganizationID,
			row.Name,
			row.OpenWeekday,
			row.CloseWeekday,
			row.OpenSaturday,
			row.CloseSaturday,
			row.OpenSunday,
			row.CloseSunday,
			pq.Array(row.EnabledWeekdays),
		).
		Suffix(`ON CONFLICT (organization_id) DO UPDATE SET
			name = EXCLUDED.name,
			time_open_weekday = EXCLUDED.time_open_weekday,
			time_close_weekday = EXCLUDED.time_close_weekday,
			time_open_saturday = EXCLUDED.time_open_saturday,
			time_close_saturday = EXCLUDED.time_close_saturday,
			time_open_sunday = EXCLUDED.time_open_sunday,
			time_close_sunday = EXCLUDED.time_close_sunday,
			enabled_weekdays = EXCLUDED.enabled_weekdays,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	result := *org
	result.CreatedAt = createdAt.Time
	result.UpdatedAt = updatedAt.Time

	return &result, nil
}

// scheduleRow строка таблицы organization_schedules в том виде, как она лежит в БД
type scheduleRow struct {
	OrganizationID  int64
	Name            string
	OpenWeekday     types.NullTimeOfDay
	CloseWeekday    types.NullTimeOfDay
	OpenSaturday    types.NullTimeOfDay
	CloseSaturday   types.NullTimeOfDay
	OpenSunday      types.NullTimeOfDay
	CloseSunday     types.NullTimeOfDay
	EnabledWeekdays []string
}

func (row scheduleRow) toDomain() (*domain.Organization, error) {
	enabled, err := domain.ParseWeekdaySet(row.EnabledWeekdays)
	if err != nil {
		return nil, err
	}

	return &domain.Organization{
		ID:   row.OrganizationID,
		Name: row.Name,
		Schedule: domain.WeeklySchedule{
			Weekday:         domain.OpeningHours{Open: row.OpenWeekday.Ptr(), Close: row.CloseWeekday.Ptr()},
			Saturday:        domain.OpeningHours{Open: row.OpenSaturday.Ptr(), Close: row.CloseSaturday.Ptr()},
			Sunday:          domain.OpeningHours{Open: row.OpenSunday.Ptr(), Close: row.CloseSunday.Ptr()},
			EnabledWeekdays: enabled,
		},
	}, nil
}

func fromDomain(org *domain.Organization) scheduleRow {
	s := org.Schedule
	return scheduleRow{
		OrganizationID:  org.ID,
		Name:            org.Name,
		OpenWeekday:     types.NewNullTimeOfDay(s.Weekday.Open),
		CloseWeekday:    types.NewNullTimeOfDay(s.Weekday.Close),
		OpenSaturday:    types.NewNullTimeOfDay(s.Saturday.Open),
		CloseSaturday:   types.NewNullTimeOfDay(s.Saturday.Close),
		OpenSunday:      types.NewNullTimeOfDay(s.Sunday.Open),
		CloseSunday:     types.NewNullTimeOfDay(s.Sunday.Close),
		EnabledWeekdays: s.EnabledWeekdays.Names(),
	}
}
