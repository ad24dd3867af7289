package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/strizhka-app/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/strizhka-app/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingParams    = "serviceId, barberId и date обязательны"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidBarberID  = "некорректный ID мастера"
	msgInvalidInput     = "некорректные параметры запроса"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: serviceId, barberId, date (YYYY-MM-DD) - все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceIDStr := query.Get("serviceId")
	barberIDStr := query.Get("barberId")
	date := query.Get("date")
	if serviceIDStr == "" || barberIDStr == "" || date == "" {
		h.logger.Warn("GET /availability - Missing required params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceID: serviceID,
		BarberID:  barberID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to get slots: service_id=%d, barber_id=%d, date=%s, error=%v",
				serviceID, barberID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved: barber_id=%d, date=%s, slots_count=%d",
		barberID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
