// Package cpsign проверяет подлинность уведомлений CloudPayments.
// Уведомления подписаны как base64(HMAC-SHA256(тело запроса, API Secret))
// и приходят в заголовках X-Content-HMAC / Content-HMAC.
package cpsign

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// Sign вычисляет base64(HMAC-SHA256(message, secret))
func Sign(secret string, message []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify сверяет подпись сообщения с кандидатами из заголовков уведомления.
// Принимается любой из заголовков (в документации CloudPayments их два из-за
// особенностей URL-кодирования). Сравнение выполняется за константное время.
// Пустой секрет означает, что проверить подлинность невозможно - всегда false.
func Verify(secret string, rawMessage []byte, headerValues ...string) bool {
	if secret == "" {
		return false
	}

	expected := []byte(Sign(secret, rawMessage))

	ok := false
	for _, h := range headerValues {
		if h == "" {
			continue
		}
		if subtle.ConstantTimeCompare(expected, []byte(h)) == 1 {
			ok = true
		}
	}
	return ok
}
