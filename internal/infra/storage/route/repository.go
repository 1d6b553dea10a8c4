package route

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/psqlbuilder"
)

const tableName = "routes"

var columns = []string{
	"id",
	"organization_id",
	"name",
	"duration_minutes",
	"max_visitors",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий маршрутов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория маршрутов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает маршрут по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan route: %v", ErrScanRow, err)
	}

	return route, nil
}

// ListByOrganization получает маршруты организации, упорядоченные по имени
// onlyActive = true исключает маршруты, снятые с продажи
func (r *Repository) ListByOrganization(ctx context.Context, organizationID int64, onlyActive bool) ([]*domain.Route, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("name ASC", "id ASC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOrganization - scan route: %v", ErrScanRow, err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOrganization - iterate rows: %v", ErrScanRow, err)
	}

	return routes, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(s scanner) (*domain.Route, error) {
	var (
		route                domain.Route
		createdAt, updatedAt sql.NullTime
	)

	err := s.Scan(
		&route.ID,
		&route.OrganizationID,
		&route.Name,
		&route.DurationMinutes,
		&route.MaxVisitors,
		&route.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	route.CreatedAt = createdAt.Time
	route.UpdatedAt = updatedAt.Time

	return &route, nil
}
