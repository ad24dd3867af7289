package shopconfig

import (
	"context"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	ListActiveServices(ctx context.Context) ([]*domain.Service, error)
	ListActiveBarbers(ctx context.Context) ([]*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
