package metrics

import "cx-metrics-go/internal/types"

// Score runs parse, scale resolution, normalization and categorization for one question.
// ok is false when the answer holds no score for this family.
func (f Family) Score(questionID, questionText string, value any, explicitScale *int) (types.MetricScore, bool) {
	scaleMax := f.ResolveScaleMax(questionText, explicitScale)
	raw, ok := f.Parse(value, scaleMax)
	if !ok {
		return types.MetricScore{}, false
	}
	return types.MetricScore{
		QuestionID:      questionID,
		QuestionText:    questionText,
		RawScore:        raw,
		ScaleMax:        scaleMax,
		NormalizedScore: f.Normalize(raw, scaleMax),
		Category:        f.Categorize(raw, scaleMax),
	}, true
}
