package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
)

// ResolvePrice вычисляет цену слота, начинающегося в момент at.
//
// Каскад специфичности, первое совпадение выигрывает:
//  1. Упорядоченные тарифные правила конфигурации. Правило совпадает, если его
//     дни содержат гражданский день недели момента, настенное время попадает в
//     [StartTime, EndTime) и правило применимо к корту courtID. Правила
//     просматриваются строго в порядке списка - пересекающиеся правила
//     разрешаются порядком, а не специфичностью.
//  2. Базовая цена корта courtBasePrice, если задана.
//  3. Базовая цена площадки.
//
// Функция чистая и детерминированная: никакого ввода-вывода и побочных эффектов.
func ResolvePrice(
	cfg *EntityConfiguration,
	conv *civiltime.Converter,
	at time.Time,
	courtID *int64,
	courtBasePrice *float64,
) float64 {
	weekday := conv.Weekday(at)
	timeOfDay := conv.TimeOfDay(at)

	for i := range cfg.PricingRules {
		rule := &cfg.PricingRules[i]
		if !rule.AppliesOnDay(weekday) {
			continue
		}
		if !rule.InWindow(timeOfDay) {
			continue
		}
		if !rule.AppliesToCourt(courtID) {
			continue
		}
		return rule.Price
	}

	if courtBasePrice != nil {
		return *courtBasePrice
	}

	return cfg.BasePrice
}
