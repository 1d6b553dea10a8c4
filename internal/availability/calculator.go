// Package availability вычисляет доступные для записи даты и временные слоты маршрутов.
// Все функции чистые: без состояния, ввода-вывода и обращения к часам.
package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RouteAvailability/internal/domain"
	"github.com/m04kA/SMC-RouteAvailability/pkg/types"
)

// ComputeDateAvailability размечает каждую дату в [horizonStart, horizonEnd]:
// true, если день недели даты входит в schedule.EnabledWeekdays.
// Часы работы здесь не учитываются.
func ComputeDateAvailability(schedule domain.WeeklySchedule, horizonStart, horizonEnd time.Time) domain.DateAvailability {
	start := domain.TruncateToDate(horizonStart)
	end := time.Date(horizonEnd.Year(), horizonEnd.Month(), horizonEnd.Day(), 0, 0, 0, 0, start.Location())

	result := make(domain.DateAvailability)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		result[d.Format(domain.DateFormat)] = schedule.IsEnabled(d)
	}

	return result
}

// ComputeTimeSlots генерирует слоты длиной routeDurationMinutes подряд от открытия до закрытия.
// Хвост короче длительности маршрута отбрасывается. EnabledWeekdays не учитывается.
// Неположительная длительность - ошибка вызывающего кода, функция паникует.
func ComputeTimeSlots(schedule domain.WeeklySchedule, date time.Time, routeDurationMinutes int) []domain.TimeSlot {
	if routeDurationMinutes <= 0 {
		panic(fmt.Sprintf("availability: route duration must be positive, got %d", routeDurationMinutes))
	}

	hours := schedule.HoursFor(date)
	if !hours.IsDefined() {
		return []domain.TimeSlot{}
	}

	return generateSlots(*hours.Open, *hours.Close, routeDurationMinutes)
}

// generateSlots нарезает [openAt, closeAt) на интервалы по duration минут
func generateSlots(openAt, closeAt types.TimeOfDay, duration int) []domain.TimeSlot {
	if !openAt.IsBefore(closeAt) {
		return []domain.TimeSlot{}
	}

	slots := make([]domain.TimeSlot, 0, closeAt.Sub(openAt)/duration)
	current := openAt

	// current + duration <= closeAt гарантирует, что AddMinutes не выйдет за пределы суток
	for closeAt.Sub(current) >= duration {
		end, err := current.AddMinutes(duration)
		if err != nil {
			panic(fmt.Sprintf("availability: %v", err))
		}

		slots = append(slots, domain.TimeSlot{Start: current, End: end})
		current = end
	}

	return slots
}
