package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending - слот удержан, ожидается оплата
	StatusPending BookingStatus = "pending"
	// StatusConfirmed - оплата прошла, запись подтверждена
	StatusConfirmed BookingStatus = "confirmed"
	// StatusCanceled - запись отменена (истёк холд, платеж не прошёл или явная отмена)
	StatusCanceled BookingStatus = "canceled"
)

// Booking represents a booking record in the system.
// ID используется как InvoiceId в CloudPayments, по нему шлюз присылает уведомления.
type Booking struct {
	ID        string // UUID, генерируется при создании холда
	BarberID  int64
	ServiceID int64

	Date       string // YYYY-MM-DD
	StartLocal string // YYYY-MM-DDTHH:MM, локальное время без пояса
	EndLocal   string // вычисляется один раз при создании холда

	Status BookingStatus

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	// CancelToken одноразовый секрет, дающий право отменить запись.
	// Выдается клиенту при создании холда, повторно не используется.
	CancelToken string

	CreatedAt time.Time
	// ExpiresAt дедлайн холда: pending-запись с истёкшим дедлайном не занимает слот
	ExpiresAt time.Time

	// Данные платежного шлюза
	CPTransactionID *int64  // ID транзакции CloudPayments, появляется после оплаты
	CPPaymentStatus *string // диагностический тег (paid / failed / amount_mismatch), не источник истины
}

// IsTerminal returns true если статус конечный (confirmed или canceled)
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCanceled
}

// HoldExpired returns true если дедлайн холда прошёл
func (b *Booking) HoldExpired(now time.Time) bool {
	return !b.ExpiresAt.After(now)
}

// IsVisible returns true пока запись можно показывать клиенту.
// Отменённые записи при просмотре не раскрываются.
func (b *Booking) IsVisible() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Interval занятый интервал локального времени [StartLocal, EndLocal)
type Interval struct {
	StartLocal string
	EndLocal   string
}

// Overlaps проверяет пересечение полуоткрытых интервалов.
// Пересечения нет, только если один интервал целиком до или после другого.
func (i Interval) Overlaps(other Interval) bool {
	return !(i.EndLocal <= other.StartLocal || i.StartLocal >= other.EndLocal)
}
