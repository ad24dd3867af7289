package get_available_slots

import (
	"github.com/strizhka-app/booking-service/internal/domain"
	"github.com/strizhka-app/booking-service/pkg/localtime"
)

// generateSlots перебирает кандидатов с фиксированным шагом внутри рабочих часов
// и отбрасывает пересекающихся с занятыми интервалами.
//
// Кандидат m берется из startMin, startMin+step, ... пока m+duration <= endMin.
// Интервалы полуоткрытые [start, end): записи, граничащие по времени,
// пересечением не считаются.
func generateSlots(
	date string,
	workingHours *domain.WorkingHours,
	durationMin int,
	stepMin int,
	occupied []domain.Interval,
) ([]string, error) {
	startMin, err := localtime.TimeToMinutes(workingHours.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := localtime.TimeToMinutes(workingHours.EndTime)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0)

	for m := startMin; m+durationMin <= endMin; m += stepMin {
		candidate := domain.Interval{
			StartLocal: localtime.Join(date, localtime.MinutesToTime(m)),
			EndLocal:   localtime.Join(date, localtime.MinutesToTime(m+durationMin)),
		}

		free := true
		for _, occ := range occupied {
			if candidate.Overlaps(occ) {
				free = false
				break
			}
		}

		if free {
			slots = append(slots, candidate.StartLocal)
		}
	}

	return slots, nil
}
