package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// pickMin always returns the lower bound, pinning synthetic output.
func pickMin(min, _ int) int { return min }

// pickMax always returns the upper bound.
func pickMax(_, max int) int { return max }

func wibTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, WIB)
	require.NoError(t, err)
	return ts
}

func TestNormalizeFirstReadingPerDayWins(t *testing.T) {
	now := wibTime(t, "2025-03-10 05:00")
	readings := []Reading{
		{LocalTime: wibTime(t, "2025-03-10 18:00"), EnglishDesc: "Cloudy", TemperatureC: 26, HumidityPct: 70, WindSpeedKph: 9},
		{LocalTime: wibTime(t, "2025-03-10 06:00"), EnglishDesc: "Clear Sky", TemperatureC: 27, HumidityPct: 55, WindSpeedKph: 8},
		{LocalTime: wibTime(t, "2025-03-11 06:00"), EnglishDesc: "Light Rain", TemperatureC: 25, HumidityPct: 88, WindSpeedKph: 12},
		{LocalTime: wibTime(t, "2025-03-12 06:00"), EnglishDesc: "Partly Cloudy", TemperatureC: 29, HumidityPct: 65, WindSpeedKph: 10},
		{LocalTime: wibTime(t, "2025-03-13 06:00"), EnglishDesc: "Thunderstorm", TemperatureC: 24, HumidityPct: 90, WindSpeedKph: 20},
	}

	days := Normalize(readings, now, pickMin)

	require.Len(t, days, ForecastDays)
	require.Equal(t, "2025-03-10", days[0].Date)
	require.Equal(t, "2025-03-11", days[1].Date)
	require.Equal(t, "2025-03-12", days[2].Date)
	// The 06:00 reading beats the later 18:00 one for March 10.
	require.Equal(t, ConditionSunny, days[0].Condition)
	require.Equal(t, 27.0, days[0].TemperatureC)
	// The fourth distinct date is dropped, not an error.
	require.Equal(t, ConditionPartlyCloudy, days[2].Condition)
}

func TestNormalizeEmptyInputIsFullySynthetic(t *testing.T) {
	now := wibTime(t, "2025-03-10 09:00")

	days := Normalize(nil, now, pickMin)

	require.Len(t, days, ForecastDays)
	for i, day := range days {
		require.Equal(t, now.AddDate(0, 0, i).Format(DateLayout), day.Date)
		require.Equal(t, ConditionSunny, day.Condition)
		require.Equal(t, 24.0, day.TemperatureC)
		require.Equal(t, 60.0, day.HumidityPct)
		require.Equal(t, 5.0, day.WindSpeedKph)
		require.Equal(t, 10.0, day.CloudCoverPct)
		require.Equal(t, IsSuitable(day.Condition, day.TemperatureC, day.WindSpeedKph), day.Suitable)
		require.True(t, day.Suitable)
	}
}

func TestNormalizeSyntheticSuitabilityMatchesRule(t *testing.T) {
	days := Normalize(nil, wibTime(t, "2025-03-10 09:00"), pickMax)

	for _, day := range days {
		// pickMax yields thunderstorm at 32C and 15 kph wind.
		require.Equal(t, ConditionThunderstorm, day.Condition)
		require.False(t, day.Suitable)
		require.Equal(t, IsSuitable(day.Condition, day.TemperatureC, day.WindSpeedKph), day.Suitable)
	}
}

func TestNormalizePartialDataFilledToThreeDays(t *testing.T) {
	now := wibTime(t, "2025-03-10 05:00")
	readings := []Reading{
		{LocalTime: wibTime(t, "2025-03-10 06:00"), EnglishDesc: "Cloudy", TemperatureC: 26, HumidityPct: 70, WindSpeedKph: 9},
	}

	days := Normalize(readings, now, pickMin)

	require.Len(t, days, ForecastDays)
	require.Equal(t, ConditionCloudy, days[0].Condition)
	// Synthetic fill lands on the next free dates.
	require.Equal(t, "2025-03-11", days[1].Date)
	require.Equal(t, "2025-03-12", days[2].Date)
	require.Equal(t, ConditionSunny, days[1].Condition)
}

func TestNormalizeDatesStrictlyIncreasing(t *testing.T) {
	now := wibTime(t, "2025-03-10 05:00")
	readings := []Reading{
		{LocalTime: wibTime(t, "2025-03-12 06:00"), EnglishDesc: "Clear Sky", TemperatureC: 27, HumidityPct: 55, WindSpeedKph: 8},
		{LocalTime: wibTime(t, "2025-03-10 06:00"), EnglishDesc: "Cloudy", TemperatureC: 26, HumidityPct: 70, WindSpeedKph: 9},
	}

	days := Normalize(readings, now, pickMin)

	require.Len(t, days, ForecastDays)
	for i := 1; i < len(days); i++ {
		require.Less(t, days[i-1].Date, days[i].Date)
	}
}

func TestIsSuitable(t *testing.T) {
	cases := []struct {
		name      string
		condition Condition
		temp      float64
		wind      float64
		want      bool
	}{
		{"sunny in range", ConditionSunny, 27, 10, true},
		{"cloudy boundary temp", ConditionCloudy, 35, 25, true},
		{"partly cloudy low temp", ConditionPartlyCloudy, 19, 10, false},
		{"too windy", ConditionSunny, 27, 26, false},
		{"rainy never suitable", ConditionRainy, 27, 5, false},
		{"thunderstorm never suitable", ConditionThunderstorm, 27, 5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsSuitable(tc.condition, tc.temp, tc.wind))
		})
	}
}
