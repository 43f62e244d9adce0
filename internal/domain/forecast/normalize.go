package forecast

import (
	"sort"
	"time"
)

// Normalize reduces raw upstream readings to exactly ForecastDays daily
// entries: readings are walked in chronological order, the first reading
// of each distinct calendar date wins, and collection stops at three
// dates. Missing days are filled with synthetic data starting from the
// day after the last real one (or from today when nothing usable was
// read), so callers always get a full, ascending set.
func Normalize(readings []Reading, now time.Time, pick RandFn) []DailyForecast {
	sorted := make([]Reading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LocalTime.Before(sorted[j].LocalTime)
	})

	days := make([]DailyForecast, 0, ForecastDays)
	seen := make(map[string]struct{}, ForecastDays)

	for _, r := range sorted {
		if len(days) == ForecastDays {
			break
		}
		if r.LocalTime.IsZero() {
			continue
		}
		date := r.LocalTime.In(WIB).Format(DateLayout)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		days = append(days, fromReading(date, r))
	}

	for len(days) < ForecastDays {
		date := now.In(WIB).AddDate(0, 0, len(days)).Format(DateLayout)
		if _, ok := seen[date]; ok {
			// A real reading already covers this date; step past it.
			date = nextFreeDate(days, seen, now)
		}
		seen[date] = struct{}{}
		days = append(days, syntheticDay(date, pick))
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

func nextFreeDate(days []DailyForecast, seen map[string]struct{}, now time.Time) string {
	for offset := 0; ; offset++ {
		candidate := now.In(WIB).AddDate(0, 0, offset).Format(DateLayout)
		if _, ok := seen[candidate]; !ok {
			return candidate
		}
	}
}

func fromReading(date string, r Reading) DailyForecast {
	desc := r.EnglishDesc
	if desc == "" {
		desc = r.LocalDesc
	}
	condition := ClassifyCondition(desc)

	local := r.LocalDesc
	if local == "" {
		local = "Tidak diketahui"
	}
	english := r.EnglishDesc
	if english == "" {
		english = "Unknown"
	}

	return DailyForecast{
		Date:           date,
		Condition:      condition,
		LocalDesc:      local,
		EnglishDesc:    english,
		TemperatureC:   r.TemperatureC,
		HumidityPct:    r.HumidityPct,
		WindSpeedKph:   r.WindSpeedKph,
		WindDirection:  r.WindDirection,
		CloudCoverPct:  r.CloudCoverPct,
		VisibilityText: r.VisibilityText,
		Suitable:       IsSuitable(condition, r.TemperatureC, r.WindSpeedKph),
	}
}

// IsSuitable is the coarse per-day flag, independent of slot scoring.
func IsSuitable(condition Condition, temperatureC, windSpeedKph float64) bool {
	switch condition {
	case ConditionSunny, ConditionCloudy, ConditionPartlyCloudy:
		return temperatureC >= 20 && temperatureC <= 35 && windSpeedKph <= 25
	case ConditionRainy, ConditionThunderstorm:
		return false
	}
	return false
}
