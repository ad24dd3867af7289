// Package catalog - репозиторий справочных данных: услуги, мастера, графики работы.
// Для ядра бронирования это read-only данные; управление ими - вне сервиса.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/strizhka-app/booking-service/internal/domain"
	"github.com/strizhka-app/booking-service/pkg/dbmetrics"
	"github.com/strizhka-app/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу по ID независимо от её активности.
// Используется сверкой платежей: цена должна проверяться и для услуг,
// отключённых после создания холда.
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getService(ctx, squirrel.Eq{"id": id}, "GetService")
}

// GetActiveService получает активную услугу по ID
func (r *Repository) GetActiveService(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getService(ctx, squirrel.Eq{"id": id, "active": true}, "GetActiveService")
}

// GetActiveBarber получает активного мастера по ID
func (r *Repository) GetActiveBarber(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "bio", "photo_url", "active", "sort_order").
		From("barbers").
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarber - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.Name, &b.Bio, &b.PhotoURL, &b.Active, &b.SortOrder,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBarber - scan barber: %v", ErrScanRow, err)
	}

	return &b, nil
}

// GetBarber получает мастера по ID независимо от активности (для просмотра записи)
func (r *Repository) GetBarber(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "bio", "photo_url", "active", "sort_order").
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.Name, &b.Bio, &b.PhotoURL, &b.Active, &b.SortOrder,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - scan barber: %v", ErrScanRow, err)
	}

	return &b, nil
}

// GetWorkingHours получает график мастера на день недели (0=воскресенье .. 6=суббота).
// Отсутствие строки означает выходной - ErrWorkingHoursNotFound.
func (r *Repository) GetWorkingHours(ctx context.Context, barberID int64, weekday int) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("barber_id", "weekday", "start_time", "end_time").
		From("working_hours").
		Where(squirrel.Eq{"barber_id": barberID, "weekday": weekday}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.BarberID, &wh.Weekday, &wh.StartTime, &wh.EndTime,
	)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan working hours: %v", ErrScanRow, err)
	}

	return &wh, nil
}

// ListActiveServices возвращает активные услуги для публичной витрины
func (r *Repository) ListActiveServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_min", "price_cents", "active", "sort_order").
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("sort_order ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMin, &s.PriceCents, &s.Active, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListActiveBarbers возвращает активных мастеров для публичной витрины
func (r *Repository) ListActiveBarbers(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "bio", "photo_url", "active", "sort_order").
		From("barbers").
		Where(squirrel.Eq{"active": true}).
		OrderBy("sort_order ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var b domain.Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Bio, &b.PhotoURL, &b.Active, &b.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListActiveBarbers - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// getService выполняет выборку услуги по условию
func (r *Repository) getService(ctx context.Context, cond squirrel.Eq, method string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_min", "price_cents", "active", "sort_order").
		From("services").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.Name, &s.DurationMin, &s.PriceCents, &s.Active, &s.SortOrder,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, method, err)
	}

	return &s, nil
}
