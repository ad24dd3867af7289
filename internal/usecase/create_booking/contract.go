package create_booking

import (
	"context"
	"time"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// CreateIfFree атомарно создает pending-холд, если интервал свободен
	CreateIfFree(ctx context.Context, b *domain.Booking) error
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetActiveService(ctx context.Context, id int64) (*domain.Service, error)
	GetActiveBarber(ctx context.Context, id int64) (*domain.Barber, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
