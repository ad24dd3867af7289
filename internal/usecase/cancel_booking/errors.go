package cancel_booking

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен отмены не найден
	ErrTokenNotFound = errors.New("cancel_booking: cancel token not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
