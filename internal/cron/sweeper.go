// Package cron - фоновая очистка просроченных холдов по расписанию.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// sweepTimeout ограничивает длительность одного прохода очистки
const sweepTimeout = 30 * time.Second

// BookingService интерфейс сервиса записей
type BookingService interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper периодически отменяет pending-записи с истёкшим холдом.
// Нужен только для скорейшего освобождения слотов: корректность занятости
// не зависит от него, просроченный холд и так не считается занятым.
type Sweeper struct {
	service  BookingService
	schedule string
	logger   Logger
	cron     *cron.Cron
}

// NewSweeper создает новый экземпляр фоновой очистки
func NewSweeper(service BookingService, schedule string, logger Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		schedule: schedule,
		logger:   logger,
	}
}

// Start запускает очистку по расписанию
func (s *Sweeper) Start() error {
	s.cron = cron.New()

	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if _, err := s.service.SweepExpired(ctx); err != nil {
			s.logger.Error("Sweeper: sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Sweeper: started with schedule %q", s.schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего прохода
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Sweeper: stopped")
}
