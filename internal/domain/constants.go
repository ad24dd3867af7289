package domain

// Диагностические теги платежного статуса (cp_payment_status)
const (
	PaymentStatusPaid           = "paid"
	PaymentStatusFailed         = "failed"
	PaymentStatusAmountMismatch = "amount_mismatch"
)

// AmountTolerance допустимое расхождение суммы платежа с ценой услуги.
// Поглощает погрешность округления float на стороне шлюза.
const AmountTolerance = 0.009

// Default configuration values
const (
	DefaultSlotStepMinutes     = 15
	DefaultHoldMinutes         = 15
	DefaultCancelDeadlineHours = 6
	DefaultCurrency            = "RUB"
	DefaultTimezoneOffset      = "+03:00" // Москва
)

// CancelTokenLength длина hex-токена отмены
const CancelTokenLength = 24

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
