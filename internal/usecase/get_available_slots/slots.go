package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

const secondsPerMinute = 60

// ComputeAvailableSlots возвращает свободные слоты на дату targetDate.
//
// Кандидаты генерируются от открытия до закрытия включительно с шагом hours.SlotGranularity.
// Исключаются слоты, занятые активными записями на ту же дату, а если targetDate совпадает
// с датой now, то и все слоты не позже текущего момента.
// Функция не выполняет ввода-вывода и не читает системные часы.
func ComputeAvailableSlots(
	targetDate time.Time,
	now time.Time,
	appointments []*domain.Appointment,
	hours domain.BusinessHours,
) ([]types.TimeString, error) {
	if err := hours.ValidateGranularity(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	candidates := generateCandidates(hours.OpeningTime, hours.ClosingTime, hours.GranularityMinutes())
	if len(candidates) == 0 {
		return []types.TimeString{}, nil
	}

	booked := bookedSlots(targetDate, appointments)

	sameDay := isSameDay(targetDate, now)
	nowSeconds := secondsOfDay(now)

	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := booked[slot]; ok {
			continue
		}
		// Сегодня слот должен начинаться строго позже текущего момента
		if sameDay && slot.Minutes()*secondsPerMinute <= nowSeconds {
			continue
		}
		available = append(available, slot)
	}

	return available, nil
}

// generateCandidates генерирует слоты [opening, closing] с шагом step минут.
// Генерация не выходит за 23:59.
func generateCandidates(opening, closing types.TimeString, step int) []types.TimeString {
	if opening.Validate() != nil || closing.Validate() != nil || opening.IsAfter(closing) {
		return nil
	}

	slots := make([]types.TimeString, 0)
	for current := opening; !current.IsAfter(closing); {
		slots = append(slots, current)

		next, err := current.AddMinutes(step)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// bookedSlots собирает занятые слоты на дату
func bookedSlots(date time.Time, appointments []*domain.Appointment) map[types.TimeString]struct{} {
	dateKey := date.Format(domain.DateFormat)

	booked := make(map[types.TimeString]struct{}, len(appointments))
	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}
		if appointment.Date.Format(domain.DateFormat) != dateKey {
			continue
		}
		booked[appointment.TimeSlot] = struct{}{}
	}

	return booked
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// secondsOfDay возвращает время суток в секундах
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*secondsPerMinute + t.Second()
}
