package cancel_booking

// Итоговые статусы отмены. Отмена сама по себе необратима и выполняется
// всегда; статус различает, что произошло с возвратом денег.
const (
	OutcomeCanceled               = "canceled"
	OutcomeAlreadyCanceled        = "already_canceled"
	OutcomeCanceledNoRefund       = "canceled_no_refund_deadline"
	OutcomeCanceledAndRefunded    = "canceled_and_refunded"
	OutcomeCanceledButRefundError = "canceled_but_refund_failed"
)

// Request модель запроса на отмену записи
type Request struct {
	CancelToken string // Токен отмены, выданный при создании записи
}

// Response модель ответа с итогом отмены
type Response struct {
	Status  string // Один из Outcome*-статусов
	Message string // Сообщение об ошибке возврата (только для canceled_but_refund_failed)
}
