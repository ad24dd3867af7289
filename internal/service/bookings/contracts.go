package bookings

import (
	"context"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// SweepExpired отменяет все pending-записи с истёкшим холдом
	SweepExpired(ctx context.Context) (int64, error)
}

// CatalogRepository интерфейс репозитория справочников.
// Выборки без фильтра активности: запись должна показываться,
// даже если услугу или мастера уже отключили.
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetBarber(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
