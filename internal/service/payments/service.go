package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/strizhka-app/booking-service/internal/domain"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
)

// Service обрабатывает уведомления платежного шлюза (Check/Pay/Fail).
// Шлюз доставляет уведомления at-least-once и в произвольном порядке,
// поэтому каждая операция идемпотентна: повторная доставка и доставка
// после терминального перехода сводятся к no-op.
type Service struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса платежных уведомлений
func NewService(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Check отвечает шлюзу, можно ли проводить платеж. Чистое чтение, ничего
// не изменяет. Любой ненулевой код блокирует платеж на стороне шлюза.
func (s *Service) Check(ctx context.Context, n *Notification) (int, error) {
	if n.InvoiceID == "" {
		return CodeUnknownInvoice, nil
	}
	if n.AccountID == "" {
		return CodeUnknownAccount, nil
	}
	if n.Amount == nil {
		return CodeWrongAmount, nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, n.InvoiceID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Check: unknown invoice_id=%s", n.InvoiceID)
			return CodeUnknownInvoice, nil
		}
		s.logger.Error("Check: failed to get booking id=%s: %v", n.InvoiceID, err)
		return 0, fmt.Errorf("%w: Check - failed to get booking: %v", ErrInternal, err)
	}

	if booking.IsTerminal() {
		s.logger.Warn("Check: booking_id=%s already finalized, status=%s", booking.ID, booking.Status)
		return CodeAlreadyFinalized, nil
	}
	if booking.HoldExpired(s.timeProvider.Now()) {
		s.logger.Warn("Check: hold expired for booking_id=%s", booking.ID)
		return CodeExpired, nil
	}

	service, err := s.catalogRepo.GetService(ctx, booking.ServiceID)
	if err != nil {
		s.logger.Error("Check: failed to get service id=%d: %v", booking.ServiceID, err)
		return 0, fmt.Errorf("%w: Check - failed to get service: %v", ErrInternal, err)
	}
	if math.Abs(service.Price()-*n.Amount) > domain.AmountTolerance {
		s.logger.Warn("Check: amount mismatch for booking_id=%s: expected=%.2f, got=%.2f",
			booking.ID, service.Price(), *n.Amount)
		return CodeWrongAmount, nil
	}

	return CodeOK, nil
}

// Pay обрабатывает уведомление об успешном платеже. Всегда отвечает CodeOK,
// включая неизвестный invoice: ненулевой код заставил бы шлюз повторять
// доставку бесконечно. Единственный нулевой исход без подтверждения -
// расхождение суммы: записываем диагностический тег и не подтверждаем.
func (s *Service) Pay(ctx context.Context, n *Notification) (int, error) {
	if n.InvoiceID == "" {
		return CodeOK, nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, n.InvoiceID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Pay: unknown invoice_id=%s, acknowledging", n.InvoiceID)
			return CodeOK, nil
		}
		s.logger.Error("Pay: failed to get booking id=%s: %v", n.InvoiceID, err)
		return 0, fmt.Errorf("%w: Pay - failed to get booking: %v", ErrInternal, err)
	}

	service, err := s.catalogRepo.GetService(ctx, booking.ServiceID)
	if err != nil {
		s.logger.Error("Pay: failed to get service id=%d: %v", booking.ServiceID, err)
		return 0, fmt.Errorf("%w: Pay - failed to get service: %v", ErrInternal, err)
	}

	if n.Amount != nil && math.Abs(service.Price()-*n.Amount) > domain.AmountTolerance {
		s.logger.Warn("Pay: amount mismatch for booking_id=%s: expected=%.2f, got=%.2f, not confirming",
			booking.ID, service.Price(), *n.Amount)
		if err := s.bookingRepo.MarkPaymentStatus(ctx, booking.ID, domain.PaymentStatusAmountMismatch); err != nil {
			s.logger.Error("Pay: failed to mark amount mismatch for booking_id=%s: %v", booking.ID, err)
			return 0, fmt.Errorf("%w: Pay - failed to mark payment status: %v", ErrInternal, err)
		}
		return CodeOK, nil
	}

	applied, err := s.bookingRepo.Confirm(ctx, booking.ID, n.TransactionID, domain.PaymentStatusPaid)
	if err != nil {
		s.logger.Error("Pay: failed to confirm booking_id=%s: %v", booking.ID, err)
		return 0, fmt.Errorf("%w: Pay - failed to confirm booking: %v", ErrInternal, err)
	}
	if applied {
		s.logger.Info("Pay: booking_id=%s confirmed", booking.ID)
	} else {
		s.logger.Info("Pay: booking_id=%s already in terminal status, no-op", booking.ID)
	}

	return CodeOK, nil
}

// Fail обрабатывает уведомление о неуспешном платеже: pending-запись
// отменяется и слот освобождается сразу, не дожидаясь фоновой очистки.
// Для терминальных статусов - no-op: fail после успешного pay не должен
// откатить подтвержденную запись.
func (s *Service) Fail(ctx context.Context, n *Notification) (int, error) {
	if n.InvoiceID == "" {
		return CodeOK, nil
	}

	applied, err := s.bookingRepo.CancelIfPending(ctx, n.InvoiceID, domain.PaymentStatusFailed)
	if err != nil {
		s.logger.Error("Fail: failed to cancel booking_id=%s: %v", n.InvoiceID, err)
		return 0, fmt.Errorf("%w: Fail - failed to cancel booking: %v", ErrInternal, err)
	}
	if applied {
		s.logger.Info("Fail: booking_id=%s canceled, slot released", n.InvoiceID)
	}

	return CodeOK, nil
}
