package payment_webhooks

import (
	"context"

	"github.com/strizhka-app/booking-service/internal/service/payments"
)

type PaymentService interface {
	Check(ctx context.Context, n *payments.Notification) (int, error)
	Pay(ctx context.Context, n *payments.Notification) (int, error)
	Fail(ctx context.Context, n *payments.Notification) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
