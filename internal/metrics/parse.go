package metrics

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

var wordNumbers = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// ParseScore extracts an integer score in [minVal, maxVal] from an answer.
// Out-of-range values are rejected, not clamped. lexicon maps qualitative phrases for
// the target family and may be nil. It never panics; ok is false when nothing fits.
func ParseScore(value any, minVal, maxVal int, lexicon map[string]int) (score int, ok bool) {
	if n, isNum := numeric(value); isNum {
		return inRange(n, minVal, maxVal)
	}
	s, isStr := value.(string)
	if !isStr {
		return 0, false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	if m := numberPattern.FindString(s); m != "" {
		if n, err := strconv.ParseFloat(m, 64); err == nil {
			if score, ok := inRange(n, minVal, maxVal); ok {
				return score, true
			}
		}
	}
	if n, found := lexicon[s]; found {
		if n >= minVal && n <= maxVal {
			return n, true
		}
	}
	if stars := countStars(s); stars > 0 {
		if stars >= minVal && stars <= maxVal {
			return stars, true
		}
	}
	if n, found := wordNumbers[s]; found && n >= minVal && n <= maxVal {
		return n, true
	}
	return 0, false
}

// Parse is ParseScore bound to the family's range and lexicon.
func (f Family) Parse(value any, scaleMax int) (int, bool) {
	return ParseScore(value, f.MinScore, scaleMax, f.Lexicon)
}

func inRange(n float64, minVal, maxVal int) (int, bool) {
	if math.IsNaN(n) || n < float64(minVal) || n > float64(maxVal) {
		return 0, false
	}
	return int(n), true
}

func countStars(s string) int {
	return strings.Count(s, "★") + strings.Count(s, "⭐")
}

// numeric reports the value of number-typed answers. Strings are not numbers here.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// numericLike also accepts strings that are entirely a number.
func numericLike(v any) (float64, bool) {
	if n, ok := numeric(v); ok {
		return n, true
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
