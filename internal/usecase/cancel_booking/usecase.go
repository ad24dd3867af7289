package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/strizhka-app/booking-service/internal/domain"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
	"github.com/strizhka-app/booking-service/pkg/localtime"
)

// Config неизменяемые параметры отмены
type Config struct {
	DeadlineHours  int    // Минимальное время до начала записи для возврата денег
	TimezoneOffset string // Фиксированное смещение, в котором хранится start_local
	AutoRefund     bool   // Делать ли автоматический возврат при своевременной отмене
}

// UseCase use case отмены записи по токену.
// Токен работает как capability: предъявивший его может отменить ровно одну
// запись, без какой-либо другой аутентификации.
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	refundClient RefundClient
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	refundClient RefundClient,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		refundClient: refundClient,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет отмену. Отмена применяется безусловно; дедлайн влияет
// только на возврат денег. Неудавшийся возврат не откатывает отмену.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	token := strings.TrimSpace(req.CancelToken)
	if token == "" {
		return nil, fmt.Errorf("%w: cancelToken is required", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByCancelToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: token not found")
			return nil, ErrTokenNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking by token: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusCanceled {
		uc.logger.Info("CancelBooking: booking_id=%s already canceled", booking.ID)
		return &Response{Status: OutcomeAlreadyCanceled}, nil
	}

	// До начала записи должно оставаться не меньше дедлайна, иначе деньги
	// не возвращаем. start_local интерпретируется в фиксированном смещении.
	start, err := localtime.ToInstant(booking.StartLocal, uc.cfg.TimezoneOffset)
	if err != nil {
		uc.logger.Error("CancelBooking: malformed start_local %q: %v", booking.StartLocal, err)
		return nil, fmt.Errorf("%w: malformed booking time: %v", ErrInternal, err)
	}
	leadTime := start.Sub(uc.timeProvider.Now())
	refundAllowed := leadTime >= time.Duration(uc.cfg.DeadlineHours)*time.Hour

	if err := uc.bookingRepo.CancelByID(ctx, booking.ID); err != nil {
		uc.logger.Error("CancelBooking: failed to cancel booking_id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}
	uc.logger.Info("CancelBooking: booking_id=%s canceled, lead_time=%s", booking.ID, leadTime)

	if uc.cfg.AutoRefund && booking.CPTransactionID != nil && refundAllowed {
		return uc.refund(ctx, booking.ServiceID, *booking.CPTransactionID), nil
	}

	if !refundAllowed {
		return &Response{Status: OutcomeCanceledNoRefund}, nil
	}
	return &Response{Status: OutcomeCanceled}, nil
}

// refund выполняет возврат полной стоимости услуги
func (uc *UseCase) refund(ctx context.Context, serviceID, transactionID int64) *Response {
	service, err := uc.catalogRepo.GetService(ctx, serviceID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get service id=%d for refund: %v", serviceID, err)
		return &Response{Status: OutcomeCanceledButRefundError, Message: err.Error()}
	}

	if err := uc.refundClient.Refund(ctx, transactionID, service.Price()); err != nil {
		uc.logger.Error("CancelBooking: refund failed: transaction_id=%d: %v", transactionID, err)
		return &Response{Status: OutcomeCanceledButRefundError, Message: err.Error()}
	}

	uc.logger.Info("CancelBooking: refunded: transaction_id=%d, amount=%.2f", transactionID, service.Price())
	return &Response{Status: OutcomeCanceledAndRefunded}
}
