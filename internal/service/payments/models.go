package payments

// Коды ответов на уведомления CloudPayments. Контракт шлюза:
// любой ненулевой код в ответе на Check блокирует платеж.
const (
	CodeOK               = 0  // Платеж разрешен / уведомление принято
	CodeUnknownInvoice   = 10 // Неверный номер заказа
	CodeUnknownAccount   = 11 // Неверный идентификатор плательщика
	CodeWrongAmount      = 12 // Неверная сумма
	CodeAlreadyFinalized = 13 // Платеж не может быть принят (запись в терминальном статусе)
	CodeExpired          = 20 // Платеж просрочен (холд истек)
)

// Notification разобранное уведомление шлюза. Поля-указатели отсутствуют
// в payload - шлюз шлет разные наборы полей в Check/Pay/Fail.
type Notification struct {
	InvoiceID     string   // ID записи (InvoiceId)
	AccountID     string   // Идентификатор плательщика (AccountId)
	Amount        *float64 // Сумма платежа
	TransactionID *int64   // ID транзакции шлюза (есть только в Pay/Fail)
}
