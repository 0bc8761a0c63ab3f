package rating

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Parse extracts a numeric rating from whatever shape the store holds.
// Numbers pass through as-is, strings are scanned for the first signed
// decimal (comma decimal separators accepted), and anything else counts
// as zero. Parse never fails; the same function backs both filtering and
// rating aggregation so the two always agree.
func Parse(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		normalized := strings.Replace(strings.TrimSpace(v), ",", ".", 1)
		match := numberPattern.FindString(normalized)
		if match == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

// Average returns the arithmetic mean, or 0 for an empty set. Callers
// that render "no ratings yet" must special-case the empty set themselves.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// Round2 rounds to two decimal places, the precision persisted on the
// restaurant document.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

type StarDisplay struct {
	Rounded int    `json:"rounded"`
	Display string `json:"display"`
}

// Stars derives the star-icon count and the one-decimal label for an
// average rating, clamped to the 0..5 scale.
func Stars(average float64) StarDisplay {
	clamped := math.Min(math.Max(average, 0), 5)
	return StarDisplay{
		Rounded: int(math.Round(clamped)),
		Display: strconv.FormatFloat(clamped, 'f', 1, 64),
	}
}
