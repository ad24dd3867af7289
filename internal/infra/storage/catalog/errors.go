package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBarberNotFound возвращается, когда мастер не найден
	ErrBarberNotFound = errors.New("catalog.repository: barber not found")

	// ErrWorkingHoursNotFound возвращается, когда для мастера не задан график
	// на день недели. Это не ошибка данных - мастер в этот день не работает.
	ErrWorkingHoursNotFound = errors.New("catalog.repository: working hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
