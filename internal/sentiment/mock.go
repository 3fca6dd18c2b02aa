package sentiment

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordPattern = regexp.MustCompile(`[a-z']+`)

	positiveWords = map[string]bool{
		"great": true, "good": true, "excellent": true, "love": true, "easy": true,
		"fast": true, "helpful": true, "friendly": true, "amazing": true, "happy": true,
		"smooth": true, "recommend": true,
	}
	negativeWords = map[string]bool{
		"bad": true, "poor": true, "slow": true, "difficult": true, "hard": true,
		"confusing": true, "frustrating": true, "annoying": true, "broken": true,
		"terrible": true, "problem": true, "issue": true, "hate": true,
	}
)

// mockAnalyze is a deterministic offline stand-in for the gateway.
func mockAnalyze(text string) Result {
	pos, neg := 0, 0
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		switch {
		case positiveWords[w]:
			pos++
		case negativeWords[w]:
			neg++
		}
	}
	r := Result{Sentiment: "neutral", Themes: []string{}}
	if pos+neg == 0 {
		return r
	}
	r.Score = math.Round(float64(pos-neg)/float64(pos+neg)*100) / 100
	switch {
	case pos > 0 && neg > 0 && math.Abs(r.Score) < 0.34:
		r.Sentiment = "mixed"
	case r.Score > 0:
		r.Sentiment = "positive"
	case r.Score < 0:
		r.Sentiment = "negative"
	}
	return r
}
