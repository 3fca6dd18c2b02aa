package aggregator

import (
	"math"

	"cx-metrics-go/internal/metrics"
	"cx-metrics-go/internal/types"
)

// Rollup combines per-response results. NPS is percent promoters minus percent
// detractors over responses that carry an NPS score.
func Rollup(results []types.AggregatedResult) types.Rollup {
	out := types.Rollup{
		Responses:          len(results),
		TopThemes:          []string{},
		TopFrictionPoints:  []string{},
		SatisfactionLevels: map[string]int{},
		EffortLevels:       map[string]int{},
	}
	var csat, ces, rating mean
	var themes, friction counter
	for _, r := range results {
		if r.NPSCategory != nil {
			switch *r.NPSCategory {
			case metrics.Promoter:
				out.NPS.Promoters++
			case metrics.Passive:
				out.NPS.Passives++
			case metrics.Detractor:
				out.NPS.Detractors++
			}
		}
		if r.CSATNormalizedScore != nil {
			csat.add(*r.CSATNormalizedScore)
		}
		if r.SatisfactionLevel != nil {
			out.SatisfactionLevels[*r.SatisfactionLevel]++
		}
		if r.CESNormalizedScore != nil {
			ces.add(*r.CESNormalizedScore)
		}
		if r.EffortLevel != nil {
			out.EffortLevels[*r.EffortLevel]++
		}
		if r.OverallRating != nil {
			rating.add(*r.OverallRating)
		}
		for _, t := range r.KeyThemes {
			themes.add(t)
		}
		for _, f := range r.FrictionPoints {
			friction.add(f)
		}
	}
	if total := out.NPS.Promoters + out.NPS.Passives + out.NPS.Detractors; total > 0 {
		score := float64(out.NPS.Promoters-out.NPS.Detractors) / float64(total) * 100
		score = math.Round(score*10) / 10
		out.NPS.Score = &score
	}
	out.AvgCSATNormalized = csat.value()
	out.AvgCESNormalized = ces.value()
	out.AvgOverallRating = rating.value()
	out.TopThemes = themes.top(maxKeyThemes)
	out.TopFrictionPoints = friction.top(maxKeyThemes)
	return out
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) { m.sum += v; m.n++ }

func (m mean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}
