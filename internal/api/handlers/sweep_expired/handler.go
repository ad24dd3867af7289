package sweep_expired

import (
	"net/http"

	"github.com/strizhka-app/booking-service/internal/api/handlers"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	OK    bool  `json:"ok"`
	Swept int64 `json:"swept"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cleanup-expired
// Ручной запуск очистки просроченных холдов; то же самое делает cron
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	swept, err := h.service.SweepExpired(r.Context())
	if err != nil {
		h.logger.Error("POST /cleanup-expired - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cleanup-expired - Swept %d expired holds", swept)
	handlers.RespondJSON(w, http.StatusOK, SweepResponse{OK: true, Swept: swept})
}
