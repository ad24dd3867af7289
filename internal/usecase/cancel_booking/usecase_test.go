package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strizhka-app/booking-service/internal/domain"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
	"github.com/strizhka-app/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	booking    *domain.Booking
	canceledID string
}

func (f *fakeBookingRepo) GetByCancelToken(_ context.Context, token string) (*domain.Booking, error) {
	if f.booking == nil || f.booking.CancelToken != token {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) CancelByID(_ context.Context, id string) error {
	f.canceledID = id
	return nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	return f.service, nil
}

type fakeRefundClient struct {
	calls  int
	txID   int64
	amount float64
	err    error
}

func (f *fakeRefundClient) Refund(_ context.Context, transactionID int64, amount float64) error {
	f.calls++
	f.txID = transactionID
	f.amount = amount
	return f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// now соответствует 2026-02-11T09:00 в поясе +03:00
var testNow = time.Date(2026, 2, 11, 6, 0, 0, 0, time.UTC)

func confirmedBooking(startLocal string) *domain.Booking {
	return &domain.Booking{
		ID:              "b-1",
		ServiceID:       1,
		StartLocal:      startLocal,
		Status:          domain.StatusConfirmed,
		CancelToken:     "tok123",
		CPTransactionID: ptr.Ptr(int64(987654)),
	}
}

func newUseCase(booking *fakeBookingRepo, refund *fakeRefundClient, autoRefund bool) *UseCase {
	catalog := &fakeCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Стрижка", DurationMin: 30, PriceCents: 150000},
	}
	uc := NewUseCase(booking, catalog, refund, Config{
		DeadlineHours:  6,
		TimezoneOffset: "+03:00",
		AutoRefund:     autoRefund,
	}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_CanceledAndRefunded(t *testing.T) {
	// До начала 10 часов, дедлайн 6 - возврат разрешен
	booking := &fakeBookingRepo{booking: confirmedBooking("2026-02-11T19:00")}
	refund := &fakeRefundClient{}
	uc := newUseCase(booking, refund, true)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCanceledAndRefunded, resp.Status)
	assert.Equal(t, "b-1", booking.canceledID)
	assert.Equal(t, 1, refund.calls)
	assert.Equal(t, int64(987654), refund.txID)
	assert.Equal(t, 1500.0, refund.amount)
}

func TestExecute_DeadlinePassed(t *testing.T) {
	// До начала 2 часа - отмена проходит, но без возврата
	booking := &fakeBookingRepo{booking: confirmedBooking("2026-02-11T11:00")}
	refund := &fakeRefundClient{}
	uc := newUseCase(booking, refund, true)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCanceledNoRefund, resp.Status)
	assert.Equal(t, "b-1", booking.canceledID, "отмена выполняется независимо от дедлайна")
	assert.Zero(t, refund.calls)
}

func TestExecute_RefundFailed(t *testing.T) {
	booking := &fakeBookingRepo{booking: confirmedBooking("2026-02-11T19:00")}
	refund := &fakeRefundClient{err: errors.New("Not found")}
	uc := newUseCase(booking, refund, true)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCanceledButRefundError, resp.Status)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "b-1", booking.canceledID, "неудавшийся возврат не откатывает отмену")
}

func TestExecute_AutoRefundDisabled(t *testing.T) {
	booking := &fakeBookingRepo{booking: confirmedBooking("2026-02-11T19:00")}
	refund := &fakeRefundClient{}
	uc := newUseCase(booking, refund, false)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCanceled, resp.Status)
	assert.Zero(t, refund.calls)
}

func TestExecute_PendingWithoutTransaction(t *testing.T) {
	// Неоплаченный холд: транзакции нет, возвращать нечего
	b := confirmedBooking("2026-02-11T19:00")
	b.Status = domain.StatusPending
	b.CPTransactionID = nil
	booking := &fakeBookingRepo{booking: b}
	refund := &fakeRefundClient{}
	uc := newUseCase(booking, refund, true)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCanceled, resp.Status)
	assert.Zero(t, refund.calls)
}

func TestExecute_AlreadyCanceled(t *testing.T) {
	b := confirmedBooking("2026-02-11T19:00")
	b.Status = domain.StatusCanceled
	booking := &fakeBookingRepo{booking: b}
	refund := &fakeRefundClient{}
	uc := newUseCase(booking, refund, true)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeAlreadyCanceled, resp.Status)
	assert.Empty(t, booking.canceledID, "повторная отмена не трогает запись")
	assert.Zero(t, refund.calls)
}

func TestExecute_TokenNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeRefundClient{}, true)

	_, err := uc.Execute(context.Background(), &Request{CancelToken: "missing"})
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestExecute_EmptyToken(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeRefundClient{}, true)

	_, err := uc.Execute(context.Background(), &Request{CancelToken: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
