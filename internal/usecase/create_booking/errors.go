package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBarberNotFound возвращается, когда мастер не найден или неактивен
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrSlotNotAvailable возвращается, когда выбранный интервал уже занят.
	// Это штатный исход при конкурентном бронировании: клиенту следует
	// обновить список слотов, а не повторять запрос.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
