package cancel_booking

import (
	cancelBooking "github.com/strizhka-app/booking-service/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancelToken string `json:"cancelToken"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Status:  resp.Status,
		Message: resp.Message,
	}
}
