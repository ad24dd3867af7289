package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/strizhka-app/booking-service/internal/infra/storage/catalog"
	"github.com/strizhka-app/booking-service/pkg/localtime"
)

// UseCase use case получения свободных слотов.
// Список пересчитывается на каждый запрос: холды создаются конкурентно другими
// клиентами, поэтому любое кэширование давало бы устаревшую картину.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	stepMinutes int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		stepMinutes: stepMinutes,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, barber=%d, date=%s",
		req.ServiceID, req.BarberID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (нужна длительность)
	service, err := uc.catalogRepo.GetActiveService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Определяем день недели и график мастера
	weekday, err := localtime.Weekday(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: malformed date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	workingHours, err := uc.catalogRepo.GetWorkingHours(ctx, req.BarberID, weekday)
	if err != nil {
		// Нет графика на этот день недели - мастер не работает, слотов нет
		if errors.Is(err, catalogRepo.ErrWorkingHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: barber=%d has no schedule on weekday=%d", req.BarberID, weekday)
			return &Response{Slots: []string{}}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 4. Получаем занятые интервалы (confirmed + живые pending-холды)
	occupied, err := uc.bookingRepo.GetOccupied(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied intervals: %v", ErrInternal, err)
	}

	// 5. Генерируем свободные слоты
	slots, err := generateSlots(req.Date, workingHours, service.DurationMin, uc.stepMinutes, occupied)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for barber=%d, date=%s",
		len(slots), req.BarberID, req.Date)

	return &Response{Slots: slots}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberId must be positive", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
