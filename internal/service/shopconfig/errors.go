package shopconfig

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shopconfig.service: internal error")
)
