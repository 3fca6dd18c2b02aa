package metrics

import (
	"regexp"
	"strconv"
)

var rangePhrase = regexp.MustCompile(`(?i)\b1\s*(?:to|-|–)\s*(10|7|5|3)\b`)

// ResolveScaleMax picks the rating-scale maximum for a question of family f.
// Order: fixed family scale, explicit value, range phrase in the text, family default.
func (f Family) ResolveScaleMax(questionText string, explicit *int) int {
	if f.FixedScale {
		return f.DefaultScale
	}
	if explicit != nil {
		return *explicit
	}
	if m := rangePhrase.FindStringSubmatch(questionText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return f.DefaultScale
}
