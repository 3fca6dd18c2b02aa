// Package aggregator condenses ExtractedMetrics into the per-response AggregatedResult
// and rolls many results up into survey-level numbers.
package aggregator

import (
	"math"
	"strings"

	"cx-metrics-go/internal/metrics"
	"cx-metrics-go/internal/types"
)

const (
	summaryResponses   = 3
	summaryAnswerRunes = 100
	summaryLabelRunes  = 50
	maxFrictionPoints  = 10
	maxKeyThemes       = 5
)

// Summarize builds the AggregatedResult with the default family table.
func Summarize(m types.ExtractedMetrics) types.AggregatedResult {
	return SummarizeWithFamilies(m, metrics.DefaultFamilies())
}

// SummarizeWithFamilies is Summarize with custom categorization rules. Families missing
// from fs fall back to the defaults.
func SummarizeWithFamilies(m types.ExtractedMetrics, fs metrics.Families) types.AggregatedResult {
	res := types.AggregatedResult{
		FrictionPoints: []string{},
		KeyThemes:      []string{},
	}

	if r, ok := representative(m.NPSScores, family(fs, metrics.NPS)); ok {
		res.NPSScore, res.NPSCategory = &r.score, &r.category
	}
	if r, ok := representative(m.CSATScores, family(fs, metrics.CSAT)); ok {
		res.CSATScore, res.SatisfactionLevel, res.CSATNormalizedScore = &r.score, &r.category, &r.normalized
	}
	if r, ok := representative(m.CESScores, family(fs, metrics.CES)); ok {
		res.CESScore, res.EffortLevel, res.CESNormalizedScore = &r.score, &r.category, &r.normalized
	}
	if len(m.RatingScores) > 0 {
		sum := 0.0
		for _, s := range m.RatingScores {
			sum += s.NormalizedScore
		}
		avg := sum / float64(len(m.RatingScores))
		res.OverallRating = &avg
	}

	if len(m.TextResponses) == 0 {
		return res
	}
	res.TextFeedbackSummary = textSummary(m.TextResponses)
	answers := make([]string, 0, len(m.TextResponses))
	for _, t := range m.TextResponses {
		answers = append(answers, t.Answer)
	}
	res.AllTextForAnalysis = strings.Join(answers, "\n")
	if len(m.CESScores) > 0 {
		res.FrictionPoints = FrictionPoints(res.AllTextForAnalysis)
	}
	res.KeyThemes = KeyThemes(res.AllTextForAnalysis)
	return res
}

func family(fs metrics.Families, def metrics.Family) metrics.Family {
	if f, ok := fs.Lookup(def.Type); ok {
		return f
	}
	return def
}

type rep struct {
	score      int
	category   string
	normalized float64
}

// representative picks the family score: the only score, or the rounded mean
// recategorized on the first question's scale.
func representative(scores []types.MetricScore, fam metrics.Family) (rep, bool) {
	switch len(scores) {
	case 0:
		return rep{}, false
	case 1:
		s := scores[0]
		return rep{score: s.RawScore, category: s.Category, normalized: s.NormalizedScore}, true
	}
	sum := 0
	for _, s := range scores {
		sum += s.RawScore
	}
	mean := int(math.RoundToEven(float64(sum) / float64(len(scores))))
	scale := scores[0].ScaleMax
	return rep{
		score:      mean,
		category:   fam.Categorize(mean, scale),
		normalized: clamp(fam.Normalize(mean, scale), 0, 100),
	}, true
}

// clamp bounds v; a mean over mixed scales can exceed the first question's scale.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func textSummary(texts []types.TextAnswer) string {
	n := min(len(texts), summaryResponses)
	parts := make([]string, 0, n)
	for _, t := range texts[:n] {
		parts = append(parts, "Q: "+truncate(t.QuestionText, summaryLabelRunes)+"\nA: "+truncate(t.Answer, summaryAnswerRunes))
	}
	return strings.Join(parts, "\n\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
