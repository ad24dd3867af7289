package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса.
	// Обработчик в этом случае отвечает шлюзу 5xx, и тот повторяет доставку.
	ErrInternal = errors.New("payments.service: internal error")
)
