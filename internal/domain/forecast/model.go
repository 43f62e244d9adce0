package forecast

import "time"

// DateLayout is the calendar-day format used across forecasts and activities.
const DateLayout = "2006-01-02"

// WIB is the fixed service timezone; BMKG local datetimes and slot
// anchors are interpreted in western Indonesian time.
var WIB = time.FixedZone("Asia/Jakarta", 7*60*60)

// Condition is the closed set of weather categories the scorer understands.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionCloudy       Condition = "cloudy"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionThunderstorm Condition = "thunderstorm"
)

// Conditions lists every category, in the order used by the synthetic generator.
var Conditions = []Condition{
	ConditionSunny,
	ConditionCloudy,
	ConditionPartlyCloudy,
	ConditionRainy,
	ConditionThunderstorm,
}

// Period labels the fixed daily time windows.
type Period string

const (
	PeriodEarlyMorning  Period = "early_morning"
	PeriodMorning       Period = "morning"
	PeriodLateMorning   Period = "late_morning"
	PeriodAfternoon     Period = "afternoon"
	PeriodLateAfternoon Period = "late_afternoon"
)

// TimeSlot is one entry of the static slot catalog.
type TimeSlot struct {
	TimeRange  string
	Period     Period
	AnchorHour int
}

// Slots is the static catalog evaluated per forecast day, in catalog order.
var Slots = []TimeSlot{
	{TimeRange: "06:00-08:00", Period: PeriodEarlyMorning, AnchorHour: 6},
	{TimeRange: "08:00-10:00", Period: PeriodMorning, AnchorHour: 8},
	{TimeRange: "10:00-12:00", Period: PeriodLateMorning, AnchorHour: 10},
	{TimeRange: "14:00-16:00", Period: PeriodAfternoon, AnchorHour: 14},
	{TimeRange: "16:00-18:00", Period: PeriodLateAfternoon, AnchorHour: 16},
}

// Reading is a single raw upstream observation before normalization.
type Reading struct {
	LocalTime      time.Time
	LocalDesc      string
	EnglishDesc    string
	TemperatureC   float64
	HumidityPct    float64
	WindSpeedKph   float64
	WindDirection  string
	CloudCoverPct  float64
	VisibilityText string
}

// DailyForecast is one normalized calendar day. A forecast set always
// holds exactly three of these, sorted ascending by date.
type DailyForecast struct {
	Date           string    `json:"date"`
	Condition      Condition `json:"condition"`
	LocalDesc      string    `json:"conditionDescLocal"`
	EnglishDesc    string    `json:"conditionDescEnglish"`
	TemperatureC   float64   `json:"temperatureC"`
	HumidityPct    float64   `json:"humidityPct"`
	WindSpeedKph   float64   `json:"windSpeedKph"`
	WindDirection  string    `json:"windDirection,omitempty"`
	CloudCoverPct  float64   `json:"cloudCoverPct"`
	VisibilityText string    `json:"visibilityText,omitempty"`
	Suitable       bool      `json:"isSuitable"`
}

// Suggestion is one ranked (day, slot) recommendation.
type Suggestion struct {
	Date           string    `json:"date"`
	TimeRange      string    `json:"timeRange"`
	Period         Period    `json:"period"`
	Condition      Condition `json:"condition"`
	LocalDesc      string    `json:"conditionDescLocal"`
	TemperatureC   float64   `json:"temperatureC"`
	HumidityPct    float64   `json:"humidityPct"`
	WindSpeedKph   float64   `json:"windSpeedKph"`
	Score          int       `json:"suitabilityScore"`
	Recommendation string    `json:"recommendation"`
}

// ForecastDays is the fixed size of a normalized forecast set.
const ForecastDays = 3
