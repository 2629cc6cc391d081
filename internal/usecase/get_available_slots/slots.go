package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
)

// generateSlotStarts генерирует моменты начала всех слотов гражданского дня date
//
// Первый слот начинается во время открытия площадки; далее слоты идут с
// фиксированным шагом duration минут. Слот валиден, только если целиком
// помещается в окно работы: slotStart + duration <= closeInstant. Хвостовой
// неполный слот отбрасывается
//
// Границы окна - настенное время; сами слоты - абсолютные моменты, полученные
// через конвертер гражданского времени. Благодаря этому сравнение с бронями
// (хранящимися в UTC) не зависит от таймзоны процесса
func generateSlotStarts(
	conv *civiltime.Converter,
	date time.Time,
	openingHour *domain.OpeningHour,
	durationMinutes int,
) []time.Time {
	openInstant := conv.FromCivil(date, openingHour.OpenTime)
	closeInstant := conv.FromCivil(date, openingHour.CloseTime)
	step := time.Duration(durationMinutes) * time.Minute

	starts := make([]time.Time, 0)

	for current := openInstant; !current.Add(step).After(closeInstant); current = current.Add(step) {
		starts = append(starts, current)
	}

	return starts
}

// availableCourts возвращает ID кортов, свободных в интервале [slotStart, slotEnd)
//
// Корт свободен, если он активен и ни одна активная бронь на нем не пересекает
// слот. Интервалы полуоткрытые: бронь, заканчивающаяся ровно в момент начала
// слота (или начинающаяся ровно в момент его конца), НЕ считается пересечением
//
// Примеры:
// - Слот 09:00-10:30, бронь 09:00-10:30 → корт занят
// - Слот 10:30-12:00, бронь 09:00-10:30 → корт свободен (граничат)
// - Слот 09:00-10:30, бронь 10:00-11:30 → корт занят (пересечение 10:00-10:30)
func availableCourts(
	courts []domain.Court,
	slotStart, slotEnd time.Time,
	reservations []*domain.Reservation,
) []int64 {
	free := make([]int64, 0, len(courts))

	for i := range courts {
		court := &courts[i]
		if !court.IsActive {
			continue
		}

		conflict := false
		for _, res := range reservations {
			if res.CourtID != court.ID {
				continue
			}
			if !res.IsActive() {
				continue
			}
			if res.Overlaps(slotStart, slotEnd) {
				conflict = true
				break
			}
		}

		if !conflict {
			free = append(free, court.ID)
		}
	}

	return free
}

// buildSlots собирает итоговый список доступных слотов
//
// Слот попадает в ответ, только если на него свободен хотя бы один корт:
// полностью занятые слоты не возвращаются вовсе (а не помечаются недоступными).
// Цена слота - агрегированная: тарифное правило разрешается без указания корта,
// поэтому правила с CourtIDs на неё не влияют. Цена конкретного корта может
// отличаться - за ней нужно обращаться к расчету цены с указанием корта
func buildSlots(
	conv *civiltime.Converter,
	cfg *domain.EntityConfiguration,
	slotStarts []time.Time,
	durationMinutes int,
	reservations []*domain.Reservation,
) []Slot {
	step := time.Duration(durationMinutes) * time.Minute
	slots := make([]Slot, 0, len(slotStarts))

	for _, start := range slotStarts {
		free := availableCourts(cfg.Courts, start, start.Add(step), reservations)
		if len(free) == 0 {
			continue
		}

		slots = append(slots, Slot{
			Time:            conv.TimeOfDay(start),
			DurationMinutes: durationMinutes,
			Price:           domain.ResolvePrice(cfg, conv, start, nil, nil),
			AvailableCourts: free,
		})
	}

	return slots
}
