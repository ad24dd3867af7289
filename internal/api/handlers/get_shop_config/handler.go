package get_shop_config

import (
	"net/http"

	"github.com/strizhka-app/booking-service/internal/api/handlers"
)

type Handler struct {
	service ShopConfigService
	logger  Logger
}

func NewHandler(service ShopConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/config
// Публичная конфигурация витрины: параметры магазина, виджета оплаты,
// списки услуг и мастеров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /config - Failed to build config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config - Config retrieved: services=%d, barbers=%d",
		len(config.Services), len(config.Barbers))
	handlers.RespondJSON(w, http.StatusOK, config)
}
