package payments

import (
	"context"
	"time"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Confirm условно переводит pending в confirmed; false - идемпотентный no-op
	Confirm(ctx context.Context, id string, transactionID *int64, paymentStatus string) (bool, error)
	// CancelIfPending условно переводит pending в canceled; false - no-op
	CancelIfPending(ctx context.Context, id string, paymentStatus string) (bool, error)
	// MarkPaymentStatus обновляет диагностический тег, не меняя статус
	MarkPaymentStatus(ctx context.Context, id string, paymentStatus string) error
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	// GetService возвращает услугу без фильтра активности: сумма платежа
	// сверяется с ценой даже для уже отключенной услуги
	GetService(ctx context.Context, id int64) (*domain.Service, error)
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
