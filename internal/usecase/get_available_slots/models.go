package get_available_slots

// Request модель запроса на получение свободных слотов
type Request struct {
	ServiceID int64  // ID услуги
	BarberID  int64  // ID мастера
	Date      string // Дата YYYY-MM-DD
}

// Response модель ответа со списком свободных слотов.
// Slots - отсортированные по возрастанию локальные метки начала YYYY-MM-DDTHH:MM.
type Response struct {
	Slots []string
}
