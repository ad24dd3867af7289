package payment_webhooks

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/strizhka-app/booking-service/internal/service/payments"
)

// CodeResponse ответ шлюзу: {"code": N}
type CodeResponse struct {
	Code int `json:"code"`
}

// parseJSONPayload разбирает JSON-тело уведомления. Нечитаемое тело дает
// пустой payload, а не ошибку: решение о коде ответа принимает сервис
// по отсутствующим полям.
func parseJSONPayload(raw []byte) map[string]interface{} {
	payload := map[string]interface{}{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}
	return payload
}

// parseQueryPayload разбирает query-параметры GET-уведомления
func parseQueryPayload(values url.Values) map[string]interface{} {
	payload := make(map[string]interface{}, len(values))
	for key := range values {
		payload[key] = values.Get(key)
	}
	return payload
}

// toNotification извлекает поля уведомления. Шлюз шлет ключи в PascalCase,
// но исторически принимаются и camelCase-варианты. Значения в GET приходят
// строками, в JSON - числами.
func toNotification(payload map[string]interface{}) *payments.Notification {
	n := &payments.Notification{
		InvoiceID: getString(payload, "InvoiceId", "invoiceId"),
		AccountID: getString(payload, "AccountId", "accountId"),
	}
	if amount, ok := getFloat(payload, "Amount", "amount"); ok {
		n.Amount = &amount
	}
	if txID, ok := getInt64(payload, "TransactionId", "transactionId"); ok {
		n.TransactionID = &txID
	}
	return n
}

func getString(payload map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func getFloat(payload map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := payload[key].(type) {
		case float64:
			return v, true
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func getInt64(payload map[string]interface{}, keys ...string) (int64, bool) {
	if f, ok := getFloat(payload, keys...); ok {
		return int64(f), true
	}
	return 0, false
}
