package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/strizhka-app/booking-service/internal/domain"
	"github.com/strizhka-app/booking-service/pkg/dbmetrics"
	"github.com/strizhka-app/booking-service/pkg/psqlbuilder"
)

// Колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"barber_id",
	"service_id",
	"date",
	"start_local",
	"end_local",
	"status",
	"customer_name",
	"customer_phone",
	"customer_email",
	"cancel_token",
	"created_at",
	"expires_at",
	"cp_transaction_id",
	"cp_payment_status",
}

// occupiedCond условие занятости: confirmed, либо pending с живым холдом.
// Время холда сверяется с часами сервера БД, чтобы реплики приложения
// не расходились во мнении о занятости.
const occupiedCond = "(status = 'confirmed' OR (status = 'pending' AND expires_at > NOW()))"

// createIfFreeSQL условная вставка холда: проверка занятости и вставка выполняются
// одним оператором на одном снимке данных. Вместе с сериализуемой транзакцией
// это гарантирует, что два конкурентных запроса на пересекающийся интервал
// не создадут два холда.
const createIfFreeSQL = `
INSERT INTO bookings (
	id, barber_id, service_id, date, start_local, end_local,
	status, customer_name, customer_phone, customer_email,
	cancel_token, created_at, expires_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
WHERE NOT EXISTS (
	SELECT 1 FROM bookings
	WHERE barber_id = $14
	  AND date = $15
	  AND ` + occupiedCond + `
	  AND NOT ($16 >= end_local OR $17 <= start_local)
)`

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIfFree атомарно создает pending-холд, если интервал свободен.
// Возвращает ErrSlotNotAvailable без побочных эффектов, если интервал занят
// (confirmed-запись или живой pending-холд другого клиента).
// Вызывать внутри сериализуемой транзакции (см. pkg/txmanager).
func (r *Repository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, createIfFreeSQL,
		b.ID,
		b.BarberID,
		b.ServiceID,
		b.Date,
		b.StartLocal,
		b.EndLocal,
		b.Status,
		b.CustomerName,
		b.CustomerPhone,
		b.CustomerEmail,
		b.CancelToken,
		b.CreatedAt,
		b.ExpiresAt,
		b.BarberID,
		b.Date,
		b.StartLocal,
		b.EndLocal,
	)
	if err != nil {
		return fmt.Errorf("%w: CreateIfFree - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CreateIfFree - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// GetByID получает запись по ID (InvoiceId шлюза)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCancelToken получает запись по токену отмены.
// Токен - это capability: поиск по нему и есть проверка права на отмену.
func (r *Repository) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"cancel_token": token}, "GetByCancelToken")
}

// GetOccupied возвращает занятые интервалы мастера на дату:
// confirmed-записи и pending-записи с неистёкшим холдом.
// Просроченный pending логически свободен и сюда не попадает.
func (r *Repository) GetOccupied(ctx context.Context, barberID int64, date string) ([]domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_local", "end_local").
		From("bookings").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Expr(occupiedCond)).
		OrderBy("start_local ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupied - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupied - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.Interval, 0)
	for rows.Next() {
		var iv domain.Interval
		if err := rows.Scan(&iv.StartLocal, &iv.EndLocal); err != nil {
			return nil, fmt.Errorf("%w: GetOccupied - scan row: %v", ErrScanRow, err)
		}
		intervals = append(intervals, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupied - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// Confirm переводит pending-запись в confirmed, сохраняя ID транзакции шлюза.
// Условный апдейт: терминальные статусы не трогает. Возвращает true, если
// переход применился; false - идемпотентный no-op (повторная доставка webhook).
func (r *Repository) Confirm(ctx context.Context, id string, transactionID *int64, paymentStatus string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("cp_transaction_id", transactionID).
		Set("cp_payment_status", paymentStatus).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, query, args, "Confirm")
}

// CancelIfPending переводит pending-запись в canceled с диагностическим тегом.
// Используется fail-уведомлением шлюза: слот освобождается сразу, не дожидаясь
// фоновой очистки. No-op для терминальных статусов.
func (r *Repository) CancelIfPending(ctx context.Context, id string, paymentStatus string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Set("cp_payment_status", paymentStatus).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CancelIfPending - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, query, args, "CancelIfPending")
}

// CancelByID отменяет запись безусловно (явная отмена клиентом по токену).
// Единственный разрешённый переход из confirmed.
func (r *Repository) CancelByID(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CancelByID - build update query: %v", ErrBuildQuery, err)
	}

	applied, err := r.execConditional(ctx, executor, query, args, "CancelByID")
	if err != nil {
		return err
	}
	if !applied {
		return ErrBookingNotFound
	}
	return nil
}

// MarkPaymentStatus обновляет диагностический платежный тег, не меняя статус записи
func (r *Repository) MarkPaymentStatus(ctx context.Context, id string, paymentStatus string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cp_payment_status", paymentStatus).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	applied, err := r.execConditional(ctx, executor, query, args, "MarkPaymentStatus")
	if err != nil {
		return err
	}
	if !applied {
		return ErrBookingNotFound
	}
	return nil
}

// SweepExpired переводит все pending-записи с истёкшим холдом в canceled.
// Идемпотентна и безопасна при конкурентном запуске с обработчиками webhook:
// условие по статусу гарантирует, что уже подтвержденные записи не трогаются.
func (r *Repository) SweepExpired(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Expr("expires_at <= NOW()")).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SweepExpired - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SweepExpired - execute update: %v", ErrExecQuery, err)
	}

	swept, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SweepExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return swept, nil
}

// getOne выполняет выборку одной записи по условию
func (r *Repository) getOne(ctx context.Context, cond squirrel.Eq, method string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var b domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.BarberID,
		&b.ServiceID,
		&b.Date,
		&b.StartLocal,
		&b.EndLocal,
		&b.Status,
		&b.CustomerName,
		&b.CustomerPhone,
		&b.CustomerEmail,
		&b.CancelToken,
		&b.CreatedAt,
		&b.ExpiresAt,
		&b.CPTransactionID,
		&b.CPPaymentStatus,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	return &b, nil
}

// execConditional выполняет условный апдейт и сообщает, был ли он применен
func (r *Repository) execConditional(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) (bool, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	return rowsAffected > 0, nil
}
