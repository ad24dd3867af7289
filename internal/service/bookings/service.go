package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
	"github.com/strizhka-app/booking-service/internal/service/bookings/models"
)

// Service сервис просмотра записей и фоновой очистки холдов
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetByID получает запись по ID для страницы подтверждения.
// Отдает только активные записи (pending/confirmed): отмененная запись
// для внешнего наблюдателя неотличима от несуществующей по содержимому,
// различается только сообщение об ошибке.
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsVisible() {
		s.logger.Warn("GetByID: booking id=%s is not active, status=%s", id, booking.Status)
		return nil, ErrBookingNotActive
	}

	service, err := s.catalogRepo.GetService(ctx, booking.ServiceID)
	if err != nil {
		s.logger.Error("GetByID: failed to get service id=%d: %v", booking.ServiceID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get service: %v", ErrInternal, err)
	}

	barber, err := s.catalogRepo.GetBarber(ctx, booking.BarberID)
	if err != nil {
		s.logger.Error("GetByID: failed to get barber id=%d: %v", booking.BarberID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get barber: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, service.Name, barber.Name), nil
}

// SweepExpired отменяет все pending-записи с истёкшим холдом и возвращает
// количество освобожденных слотов. Идемпотентна, безопасна при конкурентном
// запуске по расписанию и вручную.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	swept, err := s.bookingRepo.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("SweepExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepExpired - repository error: %v", ErrInternal, err)
	}

	if swept > 0 {
		s.logger.Info("SweepExpired: released %d expired holds", swept)
	}
	return swept, nil
}
