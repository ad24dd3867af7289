package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strizhka-app/booking-service/internal/domain"
	catalogRepo "github.com/strizhka-app/booking-service/internal/infra/storage/catalog"
)

type fakeBookingRepo struct {
	occupied []domain.Interval
}

func (f *fakeBookingRepo) GetOccupied(_ context.Context, _ int64, _ string) ([]domain.Interval, error) {
	return f.occupied, nil
}

type fakeCatalogRepo struct {
	service      *domain.Service
	workingHours map[int]*domain.WorkingHours // weekday -> график
}

func (f *fakeCatalogRepo) GetActiveService(_ context.Context, id int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) GetWorkingHours(_ context.Context, _ int64, weekday int) (*domain.WorkingHours, error) {
	wh, ok := f.workingHours[weekday]
	if !ok {
		return nil, catalogRepo.ErrWorkingHoursNotFound
	}
	return wh, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(booking *fakeBookingRepo, catalog *fakeCatalogRepo, step int) *UseCase {
	return NewUseCase(booking, catalog, step, nopLogger{})
}

func TestExecute_FullDay(t *testing.T) {
	// 2026-02-11 - среда (weekday=3), график 09:00-18:00, услуга 30 минут, шаг 15
	catalog := &fakeCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Стрижка", DurationMin: 30, PriceCents: 150000, Active: true},
		workingHours: map[int]*domain.WorkingHours{
			3: {BarberID: 2, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
		},
	}
	uc := newUseCase(&fakeBookingRepo{}, catalog, 15)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, BarberID: 2, Date: "2026-02-11"})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-11T09:00", resp.Slots[0])
	// Последний кандидат: 17:30 + 30 минут = 18:00, ровно конец смены
	assert.Equal(t, "2026-02-11T17:30", resp.Slots[len(resp.Slots)-1])
	// (18:00-09:00)*60/15 - (30/15 - 1) = 36 - 1 = 35
	assert.Len(t, resp.Slots, 35)
	assert.IsIncreasing(t, resp.Slots)
}

func TestExecute_ExcludesOverlapping(t *testing.T) {
	// Занят интервал 14:30-15:00. Слот 14:15 (30 мин) пересекается, 14:00 и 15:00 - нет.
	catalog := &fakeCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Стрижка", DurationMin: 30, PriceCents: 150000, Active: true},
		workingHours: map[int]*domain.WorkingHours{
			3: {BarberID: 2, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
		},
	}
	booking := &fakeBookingRepo{occupied: []domain.Interval{
		{StartLocal: "2026-02-11T14:30", EndLocal: "2026-02-11T15:00"},
	}}
	uc := newUseCase(booking, catalog, 15)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, BarberID: 2, Date: "2026-02-11"})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, "2026-02-11T14:30")
	assert.NotContains(t, resp.Slots, "2026-02-11T14:15")
	assert.NotContains(t, resp.Slots, "2026-02-11T14:45")
	assert.Contains(t, resp.Slots, "2026-02-11T14:00", "граничащая запись не считается пересечением")
	assert.Contains(t, resp.Slots, "2026-02-11T15:00", "граничащая запись не считается пересечением")
}

func TestExecute_DayOff(t *testing.T) {
	// График задан только на среду; запрос на четверг 2026-02-12 - выходной
	catalog := &fakeCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Стрижка", DurationMin: 30, Active: true},
		workingHours: map[int]*domain.WorkingHours{
			3: {BarberID: 2, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
		},
	}
	uc := newUseCase(&fakeBookingRepo{}, catalog, 15)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, BarberID: 2, Date: "2026-02-12"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DurationLongerThanWindow(t *testing.T) {
	catalog := &fakeCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Комплекс", DurationMin: 600, Active: true},
		workingHours: map[int]*domain.WorkingHours{
			3: {BarberID: 2, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
		},
	}
	uc := newUseCase(&fakeBookingRepo{}, catalog, 15)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, BarberID: 2, Date: "2026-02-11"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{}, 15)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, BarberID: 2, Date: "2026-02-11"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{}, 15)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, BarberID: 2, Date: "2026-02-11"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1, BarberID: 2, Date: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
