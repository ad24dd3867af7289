package cancel_booking

import (
	"context"
	"time"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetByCancelToken находит запись по токену отмены
	GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error)
	// CancelByID безусловно переводит запись в canceled
	CancelByID(ctx context.Context, id string) error
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	// GetService возвращает услугу без фильтра активности:
	// возврат должен работать и для уже отключенных услуг
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// RefundClient интерфейс клиента возвратов платежного шлюза
type RefundClient interface {
	Refund(ctx context.Context, transactionID int64, amount float64) error
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
