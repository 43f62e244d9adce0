package forecast

import (
	"sort"
	"time"

	apperrors "github.com/yanqian/outdoor-scheduler/pkg/errors"
)

const (
	// minSuggestionScore is the cutoff below which a slot never appears
	// in the output.
	minSuggestionScore = 5
	// maxSuggestions caps the ranked output.
	maxSuggestions = 8
	// suggestionWindowDays bounds considered days around the preferred date.
	suggestionWindowDays = 2
)

// SuggestSlots ranks every (forecast day, time slot) pair within two
// days of preferredDate. Slots whose anchor instant has already passed
// relative to now are skipped, pairs scoring below the cutoff are
// dropped, and the rest are returned sorted by score descending, ties
// keeping generation order (day ascending, catalog slot order), capped
// at eight entries. An empty result is a valid outcome, not an error.
func SuggestSlots(days []DailyForecast, preferredDate string, now time.Time) ([]Suggestion, error) {
	preferred, err := time.ParseInLocation(DateLayout, preferredDate, WIB)
	if err != nil {
		return nil, apperrors.Wrap("invalid_input", "preferred date must be formatted as YYYY-MM-DD", err)
	}

	suggestions := make([]Suggestion, 0, len(days)*len(Slots))
	for _, day := range days {
		date, err := time.ParseInLocation(DateLayout, day.Date, WIB)
		if err != nil {
			continue
		}
		diff := int(date.Sub(preferred).Hours() / 24)
		if diff < -suggestionWindowDays || diff > suggestionWindowDays {
			continue
		}

		for _, slot := range Slots {
			anchor := time.Date(date.Year(), date.Month(), date.Day(), slot.AnchorHour, 0, 0, 0, WIB)
			if anchor.Before(now) {
				continue
			}

			score := scoreSlot(day, slot)
			if score < minSuggestionScore {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Date:           day.Date,
				TimeRange:      slot.TimeRange,
				Period:         slot.Period,
				Condition:      day.Condition,
				LocalDesc:      day.LocalDesc,
				TemperatureC:   day.TemperatureC,
				HumidityPct:    day.HumidityPct,
				WindSpeedKph:   day.WindSpeedKph,
				Score:          score,
				Recommendation: Recommendation(score),
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// scoreSlot sums the independent weighted components. The score has no
// upper cap and is floored at zero.
func scoreSlot(day DailyForecast, slot TimeSlot) int {
	score := 0

	switch day.Condition {
	case ConditionSunny:
		score += 15
	case ConditionPartlyCloudy:
		score += 12
	case ConditionCloudy:
		score += 8
	case ConditionRainy:
		score += 2
	case ConditionThunderstorm:
		score += 0
	}

	// Most specific temperature band wins.
	switch temp := day.TemperatureC; {
	case temp >= 24 && temp <= 30:
		score += 8
	case temp >= 20 && temp <= 34:
		score += 5
	case temp >= 18 && temp <= 36:
		score += 2
	}

	switch wind := day.WindSpeedKph; {
	case wind <= 10:
		score += 5
	case wind <= 15:
		score += 3
	case wind <= 20:
		score += 1
	}

	switch humidity := day.HumidityPct; {
	case humidity >= 40 && humidity <= 70:
		score += 3
	case humidity >= 30 && humidity <= 80:
		score += 1
	}

	switch slot.Period {
	case PeriodEarlyMorning:
		score += 2
	case PeriodMorning:
		score += 5
	case PeriodLateMorning:
		score += 3
	case PeriodAfternoon:
		score -= 1
	case PeriodLateAfternoon:
		score += 2
	}

	if score < 0 {
		return 0
	}
	return score
}

// Recommendation maps a score to its human readable tier. The lowest
// band cannot survive the cutoff filter but stays documented here.
func Recommendation(score int) string {
	switch {
	case score >= 25:
		return "Excellent - Perfect conditions for outdoor activities"
	case score >= 20:
		return "Very Good - Great weather for outdoor work"
	case score >= 15:
		return "Good - Suitable for outdoor activities"
	case score >= 10:
		return "Fair - Acceptable conditions with precautions"
	case score >= minSuggestionScore:
		return "Poor - Consider postponing if possible"
	default:
		return "Not Recommended - Unsuitable weather conditions"
	}
}
