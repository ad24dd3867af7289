package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotActive возвращается для записей в статусе canceled:
	// после отмены состояние записи наружу не раскрывается
	ErrBookingNotActive = errors.New("booking is not active")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
