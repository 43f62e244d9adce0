package forecast

import (
	"fmt"
	"math/rand/v2"
)

// RandFn returns a uniform integer in [min, max]. The synthetic
// generator takes it as a parameter so tests can pin the output.
type RandFn func(min, max int) int

// DefaultRand draws from the shared math/rand/v2 source, which is safe
// for concurrent use.
func DefaultRand(min, max int) int {
	return min + rand.IntN(max-min+1)
}

var conditionDescs = map[Condition][2]string{
	ConditionSunny:        {"Cerah", "Clear Sky"},
	ConditionCloudy:       {"Berawan", "Cloudy"},
	ConditionPartlyCloudy: {"Cerah Berawan", "Partly Cloudy"},
	ConditionRainy:        {"Hujan Ringan", "Light Rain"},
	ConditionThunderstorm: {"Hujan Petir", "Thunderstorm"},
}

var windDirections = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// syntheticDay fabricates a plausible tropical forecast day. This is the
// degraded mode used when the upstream provider is unavailable or short
// on data; callers cannot distinguish it from a real day.
func syntheticDay(date string, pick RandFn) DailyForecast {
	if pick == nil {
		pick = DefaultRand
	}

	condition := Conditions[pick(0, len(Conditions)-1)]
	descs := conditionDescs[condition]
	temperature := float64(pick(24, 32))
	wind := float64(pick(5, 15))

	return DailyForecast{
		Date:           date,
		Condition:      condition,
		LocalDesc:      descs[0],
		EnglishDesc:    descs[1],
		TemperatureC:   temperature,
		HumidityPct:    float64(pick(60, 85)),
		WindSpeedKph:   wind,
		WindDirection:  windDirections[pick(0, len(windDirections)-1)],
		CloudCoverPct:  float64(pick(10, 90)),
		VisibilityText: fmt.Sprintf("%d km", pick(5, 15)),
		Suitable:       IsSuitable(condition, temperature, wind),
	}
}
