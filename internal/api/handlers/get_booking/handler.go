package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/strizhka-app/booking-service/internal/api/handlers"
	"github.com/strizhka-app/booking-service/internal/service/bookings"
)

const (
	msgMissingBookingID = "ID записи обязателен"
	msgNotFound         = "запись не найдена, если вы только что оплатили - подождите несколько секунд и обновите страницу"
	msgNotActive        = "запись не активна"
)

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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrBookingNotActive):
			h.logger.Warn("GET /bookings/{id} - Booking not active: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgNotActive)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
