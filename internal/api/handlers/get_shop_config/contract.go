package get_shop_config

import (
	"context"

	"github.com/strizhka-app/booking-service/internal/service/shopconfig/models"
)

type ShopConfigService interface {
	Get(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
