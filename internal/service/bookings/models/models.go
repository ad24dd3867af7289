package models

import "github.com/strizhka-app/booking-service/internal/domain"

// BookingResponse данные записи для страницы подтверждения.
// Токен отмены отдается здесь: страница доступна только тому, кто знает
// booking_id, а отмененные записи наружу не раскрываются вовсе.
type BookingResponse struct {
	Date        string `json:"date"`
	StartLocal  string `json:"start_local"`
	EndLocal    string `json:"end_local"`
	ServiceName string `json:"service_name"`
	BarberName  string `json:"barber_name"`
	CancelToken string `json:"cancel_token"`
	Status      string `json:"status"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, serviceName, barberName string) *BookingResponse {
	return &BookingResponse{
		Date:        b.Date,
		StartLocal:  b.StartLocal,
		EndLocal:    b.EndLocal,
		ServiceName: serviceName,
		BarberName:  barberName,
		CancelToken: b.CancelToken,
		Status:      string(b.Status),
	}
}
