package forecast

import "strings"

// ClassifyCondition maps a free-text weather description (Indonesian or
// English, any case) to a Condition. The rules run first-match-wins and
// are approximate on purpose: BMKG descriptions are short phrases, not
// arbitrary prose, so substring checks are good enough.
func ClassifyCondition(desc string) Condition {
	lowered := strings.ToLower(desc)

	switch {
	case containsAny(lowered, "cerah", "clear"):
		// "Cerah Berawan" and friends are the partly-cloudy phrasing.
		if containsAny(lowered, "berawan", "cloudy", "sebagian", "partly") {
			return ConditionPartlyCloudy
		}
		return ConditionSunny
	case containsAny(lowered, "berawan", "cloudy"):
		if containsAny(lowered, "sebagian", "partly") {
			return ConditionPartlyCloudy
		}
		return ConditionCloudy
	case containsAny(lowered, "hujan", "rain"):
		if containsAny(lowered, "petir", "thunder") {
			return ConditionThunderstorm
		}
		return ConditionRainy
	case containsAny(lowered, "badai", "storm"):
		return ConditionThunderstorm
	default:
		return ConditionCloudy
	}
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
