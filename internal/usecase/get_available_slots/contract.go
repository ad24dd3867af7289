package get_available_slots

import (
	"context"

	"github.com/strizhka-app/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetOccupied возвращает занятые интервалы мастера на дату
	// (confirmed + pending с живым холдом)
	GetOccupied(ctx context.Context, barberID int64, date string) ([]domain.Interval, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetActiveService(ctx context.Context, id int64) (*domain.Service, error)
	GetWorkingHours(ctx context.Context, barberID int64, weekday int) (*domain.WorkingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
