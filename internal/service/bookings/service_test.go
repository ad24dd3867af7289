package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strizhka-app/booking-service/internal/domain"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	swept   int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) SweepExpired(_ context.Context) (int64, error) {
	return f.swept, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	return &domain.Service{ID: id, Name: "Стрижка"}, nil
}

func (fakeCatalogRepo) GetBarber(_ context.Context, id int64) (*domain.Barber, error) {
	return &domain.Barber{ID: id, Name: "Алексей"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByID_Active(t *testing.T) {
	booking := &fakeBookingRepo{booking: &domain.Booking{
		ID:          "b-1",
		BarberID:    2,
		ServiceID:   1,
		Date:        "2026-02-11",
		StartLocal:  "2026-02-11T14:00",
		EndLocal:    "2026-02-11T14:30",
		Status:      domain.StatusConfirmed,
		CancelToken: "tok123",
	}}
	svc := NewService(booking, fakeCatalogRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-11", resp.Date)
	assert.Equal(t, "2026-02-11T14:00", resp.StartLocal)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, "Алексей", resp.BarberName)
	assert.Equal(t, "tok123", resp.CancelToken)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_CanceledHidden(t *testing.T) {
	booking := &fakeBookingRepo{booking: &domain.Booking{
		ID:     "b-1",
		Status: domain.StatusCanceled,
	}}
	svc := NewService(booking, fakeCatalogRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "b-1")
	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, fakeCatalogRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSweepExpired(t *testing.T) {
	svc := NewService(&fakeBookingRepo{swept: 3}, fakeCatalogRepo{}, nopLogger{})

	swept, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), swept)
}
