package organization

import "errors"

var (
	// ErrOrganizationNotFound возвращается, когда расписание организации не найдено
	ErrOrganizationNotFound = errors.New("organization.repository: organization not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("organization.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("organization.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("organization.repository: failed to scan row")

	// ErrInvalidStoredValue возвращается, когда в БД лежит значение, которое нельзя разобрать
	ErrInvalidStoredValue = errors.New("organization.repository: invalid stored value")
)
