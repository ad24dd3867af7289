package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/strizhka-app/booking-service/internal/api/handlers"
	cancelBooking "github.com/strizhka-app/booking-service/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "cancelToken обязателен"
	msgTokenNotFound      = "код отмены не найден"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{CancelToken: req.CancelToken})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /cancel - Missing cancel token")
			handlers.RespondBadRequest(w, msgMissingToken)

		case errors.Is(err, cancelBooking.ErrTokenNotFound):
			h.logger.Warn("POST /cancel - Token not found")
			handlers.RespondNotFound(w, msgTokenNotFound)

		default:
			h.logger.Error("POST /cancel - Failed to cancel booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancel - Cancellation processed: status=%s", result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
