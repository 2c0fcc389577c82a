package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с услугами и их настройками слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID (без настроек слотов)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

// GetSettings получает настройки слотов услуги.
// Политика диапазона дат хранится в колонках date_range_type,
// rolling_amount/rolling_unit и fixed_start/fixed_end; активен ровно
// один вариант.
func (r *Repository) GetSettings(ctx context.Context, serviceID int64) (domain.ServiceSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"duration_minutes",
		"interval_minutes",
		"buffer_minutes",
		"minimum_notice_hours",
		"date_range_type",
		"rolling_amount",
		"rolling_unit",
		"fixed_start",
		"fixed_end",
	).
		From("service_settings").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return domain.ServiceSettings{}, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings      domain.ServiceSettings
		rangeType     string
		rollingAmount sql.NullInt64
		rollingUnit   sql.NullString
		fixedStart    sql.NullTime
		fixedEnd      sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.DurationMinutes,
		&settings.IntervalMinutes,
		&settings.BufferMinutes,
		&settings.MinimumNoticeHours,
		&rangeType,
		&rollingAmount,
		&rollingUnit,
		&fixedStart,
		&fixedEnd,
	)

	if err == sql.ErrNoRows {
		return domain.ServiceSettings{}, ErrSettingsNotFound
	}
	if err != nil {
		return domain.ServiceSettings{}, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	settings.DateRange = buildDateRangePolicy(rangeType, rollingAmount, rollingUnit, fixedStart, fixedEnd)

	return settings, nil
}

// GetEmployees получает сотрудников, назначенных на услугу.
// Сотрудник по умолчанию (is_default) всегда идет первым.
func (r *Repository) GetEmployees(ctx context.Context, serviceID int64) ([]domain.EmployeeAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"employee_id",
		"display_name",
		"is_default",
	).
		From("service_employees").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("is_default DESC", "employee_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEmployees - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]domain.EmployeeAssignment, 0)
	for rows.Next() {
		var a domain.EmployeeAssignment
		if err := rows.Scan(&a.EmployeeID, &a.DisplayName, &a.IsDefault); err != nil {
			return nil, fmt.Errorf("%w: GetEmployees - scan assignment: %v", ErrScanRow, err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetEmployees - iterate rows: %v", ErrExecQuery, err)
	}

	return assignments, nil
}

// buildDateRangePolicy собирает tagged union политики из nullable колонок
func buildDateRangePolicy(rangeType string, amount sql.NullInt64, unit sql.NullString, start, end sql.NullTime) domain.DateRangePolicy {
	policy := domain.DateRangePolicy{Type: domain.DateRangeType(rangeType)}

	switch policy.Type {
	case domain.RangeRolling:
		policy.Amount = int(amount.Int64)
		policy.Unit = domain.RollingUnit(unit.String)
	case domain.RangeFixed:
		policy.Start = start.Time
		policy.End = end.Time
	}

	return policy
}
