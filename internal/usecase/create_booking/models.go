package create_booking

import "time"

// Request модель запроса на создание холда
type Request struct {
	ServiceID  int64   // ID услуги
	BarberID   int64   // ID мастера
	Date       string  // Дата YYYY-MM-DD
	StartLocal string  // Желаемое начало YYYY-MM-DDTHH:MM
	Name       string  // Имя клиента
	Phone      string  // Телефон клиента (становится AccountId в CloudPayments)
	Email      *string // Email клиента (опционально)
}

// Response модель ответа с созданным холдом и параметрами запуска оплаты
// (виджет CloudPayments на фронте инициализируется этими полями)
type Response struct {
	BookingID   string    // ID записи, он же InvoiceId для шлюза
	CancelToken string    // Токен отмены, показывается клиенту один раз
	Amount      float64   // Сумма к оплате
	Currency    string    // Валюта
	Description string    // Описание платежа ("Услуга — Мастер")
	PublicID    string    // Public ID терминала CloudPayments
	AccountID   string    // Идентификатор плательщика (телефон)
	Email       *string   // Email для чека
	ExpiresAt   time.Time // Дедлайн холда: до этого момента нужно оплатить

	Date       string // Дата записи
	StartLocal string // Начало
	EndLocal   string // Конец (начало + длительность услуги на момент создания)
}
