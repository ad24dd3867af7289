package create_booking

import (
	"time"

	createBooking "github.com/strizhka-app/booking-service/internal/usecase/create_booking"
)

// Customer данные клиента
type Customer struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID  int64    `json:"serviceId"`
	BarberID   int64    `json:"barberId"`
	Date       string   `json:"date"`
	StartLocal string   `json:"startLocal"`
	Customer   Customer `json:"customer"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID:  r.ServiceID,
		BarberID:   r.BarberID,
		Date:       r.Date,
		StartLocal: r.StartLocal,
		Name:       r.Customer.Name,
		Phone:      r.Customer.Phone,
		Email:      r.Customer.Email,
	}
}

// NotifyURLs адреса уведомлений CloudPayments. Возвращаются клиенту как
// подсказка: их нужно прописать в личном кабинете шлюза.
type NotifyURLs struct {
	Check string `json:"check"`
	Pay   string `json:"pay"`
	Fail  string `json:"fail"`
}

// CreateBookingResponse HTTP response model: параметры созданного холда
// и данные для инициализации платежного виджета CloudPayments
type CreateBookingResponse struct {
	BookingID   string  `json:"booking_id"`
	CancelToken string  `json:"cancel_token"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	PublicID    string  `json:"public_id"`
	AccountID   string  `json:"account_id"`
	Email       *string `json:"email"`
	ExpiresAt   string  `json:"expires_at"` // RFC 3339

	Date       string `json:"date"`
	StartLocal string `json:"start_local"`
	EndLocal   string `json:"end_local"`

	NotifyURLs NotifyURLs `json:"notify_urls"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// origin - схема и хост, по которым пришел запрос.
func FromUseCaseResponse(resp *createBooking.Response, origin string) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:   resp.BookingID,
		CancelToken: resp.CancelToken,
		Amount:      resp.Amount,
		Currency:    resp.Currency,
		Description: resp.Description,
		PublicID:    resp.PublicID,
		AccountID:   resp.AccountID,
		Email:       resp.Email,
		ExpiresAt:   resp.ExpiresAt.UTC().Format(time.RFC3339),
		Date:        resp.Date,
		StartLocal:  resp.StartLocal,
		EndLocal:    resp.EndLocal,
		NotifyURLs: NotifyURLs{
			Check: origin + "/api/v1/cloudpayments/check",
			Pay:   origin + "/api/v1/cloudpayments/pay",
			Fail:  origin + "/api/v1/cloudpayments/fail",
		},
	}
}
