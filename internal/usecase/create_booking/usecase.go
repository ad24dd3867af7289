package create_booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strizhka-app/booking-service/internal/domain"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/strizhka-app/booking-service/internal/infra/storage/catalog"
	"github.com/strizhka-app/booking-service/pkg/localtime"
)

// Config неизменяемые параметры создания холда
type Config struct {
	HoldMinutes int    // Время жизни холда до оплаты
	Currency    string // Валюта платежа
	PublicID    string // Public ID терминала CloudPayments
}

// UseCase use case создания холда (pending-записи) с параметрами оплаты
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания холда.
// Проверка занятости и вставка выполняются одним условным INSERT внутри
// сериализуемой транзакции: два конкурентных запроса на пересекающийся интервал
// не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, barber=%d, date=%s, start=%s",
		req.ServiceID, req.BarberID, req.Date, req.StartLocal)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (длительность и цена фиксируются сейчас;
	// последующее изменение услуги не влияет на уже созданные холды)
	service, err := uc.catalogRepo.GetActiveService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем мастера
	barber, err := uc.catalogRepo.GetActiveBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Конец интервала вычисляется один раз и денормализуется в запись
	endLocal, err := localtime.AddMinutes(req.StartLocal, service.DurationMin)
	if err != nil {
		uc.logger.Warn("CreateBooking: malformed start %q: %v", req.StartLocal, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Генерируем идентификатор и токен отмены
	now := uc.timeProvider.Now()
	cancelToken, err := newCancelToken(domain.CancelTokenLength)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to generate cancel token: %v", err)
		return nil, fmt.Errorf("%w: failed to generate cancel token: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		StartLocal:    req.StartLocal,
		EndLocal:      endLocal,
		Status:        domain.StatusPending,
		CustomerName:  req.Name,
		CustomerPhone: req.Phone,
		CustomerEmail: req.Email,
		CancelToken:   cancelToken,
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Duration(uc.cfg.HoldMinutes) * time.Minute),
	}

	// 6. Атомарная условная вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.bookingRepo.CreateIfFree(txCtx, booking)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot taken: barber=%d, start=%s", req.BarberID, req.StartLocal)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create hold: %v", err)
		return nil, fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: hold created: booking_id=%s, expires_at=%s",
		booking.ID, booking.ExpiresAt.Format(time.RFC3339))

	return &Response{
		BookingID:   booking.ID,
		CancelToken: booking.CancelToken,
		Amount:      service.Price(),
		Currency:    uc.cfg.Currency,
		Description: fmt.Sprintf("%s — %s", service.Name, barber.Name),
		PublicID:    uc.cfg.PublicID,
		AccountID:   req.Phone,
		Email:       req.Email,
		ExpiresAt:   booking.ExpiresAt,
		Date:        booking.Date,
		StartLocal:  booking.StartLocal,
		EndLocal:    booking.EndLocal,
	}, nil
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
	if req.StartLocal == "" {
		return fmt.Errorf("%w: startLocal is required", ErrInvalidInput)
	}
	if req.Name == "" || req.Phone == "" {
		return fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}

	date, _, err := localtime.Split(req.StartLocal)
	if err != nil {
		return fmt.Errorf("%w: invalid startLocal: %v", ErrInvalidInput, err)
	}
	if date != req.Date {
		return fmt.Errorf("%w: startLocal date does not match date", ErrInvalidInput)
	}

	return nil
}

// newCancelToken генерирует hex-токен заданной длины
func newCancelToken(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:length], nil
}
