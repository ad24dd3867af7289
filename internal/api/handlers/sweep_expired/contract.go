package sweep_expired

import "context"

type BookingService interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
