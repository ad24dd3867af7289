package models

import "github.com/strizhka-app/booking-service/internal/domain"

// ServiceItem услуга в публичной витрине
type ServiceItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
	PriceCents  int64  `json:"price_cents"`
}

// BarberItem мастер в публичной витрине
type BarberItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

// ConfigResponse публичная конфигурация витрины: параметры магазина,
// платежного виджета и справочники для формы записи
type ConfigResponse struct {
	ShopName              string `json:"shop_name"`
	ShopTagline           string `json:"shop_tagline"`
	ContactsHTML          string `json:"contacts_html"`
	Currency              string `json:"currency"`
	PaymentProvider       string `json:"payment_provider"`
	CloudPaymentsPublicID string `json:"cloudpayments_public_id"`
	TimezoneOffset        string `json:"timezone_offset"`
	SlotStepMin           int    `json:"slot_step_min"`
	HoldMinutes           int    `json:"hold_minutes"`
	CancelDeadlineHours   int    `json:"cancel_deadline_hours"`

	Services []ServiceItem `json:"services"`
	Barbers  []BarberItem  `json:"barbers"`
}

// FromDomainServices конвертирует список услуг в DTO
func FromDomainServices(services []*domain.Service) []ServiceItem {
	items := make([]ServiceItem, 0, len(services))
	for _, s := range services {
		items = append(items, ServiceItem{
			ID:          s.ID,
			Name:        s.Name,
			DurationMin: s.DurationMin,
			PriceCents:  s.PriceCents,
		})
	}
	return items
}

// FromDomainBarbers конвертирует список мастеров в DTO
func FromDomainBarbers(barbers []*domain.Barber) []BarberItem {
	items := make([]BarberItem, 0, len(barbers))
	for _, b := range barbers {
		items = append(items, BarberItem{
			ID:       b.ID,
			Name:     b.Name,
			Bio:      b.Bio,
			PhotoURL: b.PhotoURL,
		})
	}
	return items
}
