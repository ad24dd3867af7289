package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strizhka-app/booking-service/internal/domain"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
	"github.com/strizhka-app/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	booking *domain.Booking

	confirmedID    string
	confirmedTxID  *int64
	confirmedTag   string
	canceledID     string
	canceledTag    string
	markedID       string
	markedTag      string
	confirmApplied bool
	cancelApplied  bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id string, transactionID *int64, paymentStatus string) (bool, error) {
	f.confirmedID = id
	f.confirmedTxID = transactionID
	f.confirmedTag = paymentStatus
	return f.confirmApplied, nil
}

func (f *fakeBookingRepo) CancelIfPending(_ context.Context, id string, paymentStatus string) (bool, error) {
	f.canceledID = id
	f.canceledTag = paymentStatus
	return f.cancelApplied, nil
}

func (f *fakeBookingRepo) MarkPaymentStatus(_ context.Context, id string, paymentStatus string) error {
	f.markedID = id
	f.markedTag = paymentStatus
	return nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	return f.service, nil
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

var testNow = time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "inv-1",
		ServiceID: 1,
		Status:    domain.StatusPending,
		ExpiresAt: testNow.Add(10 * time.Minute),
	}
}

func newService(booking *fakeBookingRepo) *Service {
	catalog := &fakeCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Стрижка", PriceCents: 150000},
	}
	svc := NewService(booking, catalog, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func notification(invoiceID string, amount float64) *Notification {
	return &Notification{
		InvoiceID: invoiceID,
		AccountID: "+79990001122",
		Amount:    ptr.Ptr(amount),
	}
}

func TestCheck_Codes(t *testing.T) {
	tests := []struct {
		name    string
		booking *domain.Booking
		n       *Notification
		want    int
	}{
		{
			name:    "платеж разрешен",
			booking: pendingBooking(),
			n:       notification("inv-1", 1500.0),
			want:    CodeOK,
		},
		{
			name:    "погрешность округления в пределах допуска",
			booking: pendingBooking(),
			n:       notification("inv-1", 1500.004),
			want:    CodeOK,
		},
		{
			name:    "нет InvoiceId",
			booking: pendingBooking(),
			n:       &Notification{AccountID: "+79990001122", Amount: ptr.Ptr(1500.0)},
			want:    CodeUnknownInvoice,
		},
		{
			name:    "неизвестный InvoiceId",
			booking: pendingBooking(),
			n:       notification("inv-999", 1500.0),
			want:    CodeUnknownInvoice,
		},
		{
			name:    "нет AccountId",
			booking: pendingBooking(),
			n:       &Notification{InvoiceID: "inv-1", Amount: ptr.Ptr(1500.0)},
			want:    CodeUnknownAccount,
		},
		{
			name:    "нет суммы",
			booking: pendingBooking(),
			n:       &Notification{InvoiceID: "inv-1", AccountID: "+79990001122"},
			want:    CodeWrongAmount,
		},
		{
			name:    "сумма не совпадает с ценой услуги",
			booking: pendingBooking(),
			n:       notification("inv-1", 100.0),
			want:    CodeWrongAmount,
		},
		{
			name: "запись уже подтверждена",
			booking: func() *domain.Booking {
				b := pendingBooking()
				b.Status = domain.StatusConfirmed
				return b
			}(),
			n:    notification("inv-1", 1500.0),
			want: CodeAlreadyFinalized,
		},
		{
			name: "запись отменена",
			booking: func() *domain.Booking {
				b := pendingBooking()
				b.Status = domain.StatusCanceled
				return b
			}(),
			n:    notification("inv-1", 1500.0),
			want: CodeAlreadyFinalized,
		},
		{
			name: "холд истек",
			booking: func() *domain.Booking {
				b := pendingBooking()
				b.ExpiresAt = testNow.Add(-time.Minute)
				return b
			}(),
			n:    notification("inv-1", 1500.0),
			want: CodeExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeBookingRepo{booking: tt.booking})

			code, err := svc.Check(context.Background(), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestPay_Confirms(t *testing.T) {
	booking := &fakeBookingRepo{booking: pendingBooking(), confirmApplied: true}
	svc := newService(booking)

	n := notification("inv-1", 1500.0)
	n.TransactionID = ptr.Ptr(int64(987654))

	code, err := svc.Pay(context.Background(), n)
	require.NoError(t, err)

	assert.Equal(t, CodeOK, code)
	assert.Equal(t, "inv-1", booking.confirmedID)
	require.NotNil(t, booking.confirmedTxID)
	assert.Equal(t, int64(987654), *booking.confirmedTxID)
	assert.Equal(t, domain.PaymentStatusPaid, booking.confirmedTag)
}

func TestPay_RedeliveryIsNoop(t *testing.T) {
	// Повторная доставка: условный апдейт не применяется, но ответ тот же
	booking := &fakeBookingRepo{booking: pendingBooking(), confirmApplied: false}
	svc := newService(booking)

	code, err := svc.Pay(context.Background(), notification("inv-1", 1500.0))
	require.NoError(t, err)
	assert.Equal(t, CodeOK, code)
}

func TestPay_UnknownInvoiceAcknowledged(t *testing.T) {
	// Неизвестный invoice подтверждаем кодом 0, иначе шлюз ретраит бесконечно
	booking := &fakeBookingRepo{}
	svc := newService(booking)

	code, err := svc.Pay(context.Background(), notification("inv-999", 1500.0))
	require.NoError(t, err)

	assert.Equal(t, CodeOK, code)
	assert.Empty(t, booking.confirmedID)
}

func TestPay_AmountMismatchNotConfirmed(t *testing.T) {
	booking := &fakeBookingRepo{booking: pendingBooking()}
	svc := newService(booking)

	code, err := svc.Pay(context.Background(), notification("inv-1", 100.0))
	require.NoError(t, err)

	assert.Equal(t, CodeOK, code)
	assert.Empty(t, booking.confirmedID, "запись не подтверждается при расхождении суммы")
	assert.Equal(t, "inv-1", booking.markedID)
	assert.Equal(t, domain.PaymentStatusAmountMismatch, booking.markedTag)
}

func TestFail_CancelsPending(t *testing.T) {
	booking := &fakeBookingRepo{booking: pendingBooking(), cancelApplied: true}
	svc := newService(booking)

	code, err := svc.Fail(context.Background(), &Notification{InvoiceID: "inv-1"})
	require.NoError(t, err)

	assert.Equal(t, CodeOK, code)
	assert.Equal(t, "inv-1", booking.canceledID)
	assert.Equal(t, domain.PaymentStatusFailed, booking.canceledTag)
}

func TestFail_AfterPayIsNoop(t *testing.T) {
	// Fail после успешного Pay не должен откатить confirmed-запись:
	// условный апдейт по статусу pending не применяется
	booking := &fakeBookingRepo{cancelApplied: false}
	svc := newService(booking)

	code, err := svc.Fail(context.Background(), &Notification{InvoiceID: "inv-1"})
	require.NoError(t, err)
	assert.Equal(t, CodeOK, code)
}

func TestFail_MissingInvoice(t *testing.T) {
	booking := &fakeBookingRepo{}
	svc := newService(booking)

	code, err := svc.Fail(context.Background(), &Notification{})
	require.NoError(t, err)

	assert.Equal(t, CodeOK, code)
	assert.Empty(t, booking.canceledID)
}
