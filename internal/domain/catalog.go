package domain

import "math"

// Service услуга барбершопа (справочные данные, для ядра - только чтение)
type Service struct {
	ID          int64
	Name        string
	DurationMin int
	PriceCents  int64
	Active      bool
	SortOrder   int
}

// Price возвращает цену в основных единицах валюты с точностью до копеек.
// Именно это значение сверяется с суммой из уведомлений шлюза.
func (s *Service) Price() float64 {
	return math.Round(float64(s.PriceCents)) / 100
}

// Barber мастер (справочные данные)
type Barber struct {
	ID        int64
	Name      string
	Bio       *string
	PhotoURL  *string
	Active    bool
	SortOrder int
}

// WorkingHours рабочие часы мастера в конкретный день недели.
// Отсутствие строки для дня недели означает, что мастер не работает.
type WorkingHours struct {
	BarberID  int64
	Weekday   int    // 0=воскресенье .. 6=суббота
	StartTime string // HH:MM
	EndTime   string // HH:MM
}
