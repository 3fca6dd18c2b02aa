package extractor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"cx-metrics-go/internal/metrics"
	"cx-metrics-go/internal/types"
)

func (e *Extractor) processScore(out *types.ExtractedMetrics, qt types.QuestionType, q question, answer any) {
	fam, ok := e.families.Lookup(qt)
	if !ok {
		processText(out, q, answer)
		return
	}
	ms, ok := fam.Score(q.id, q.text, answer, q.explicitScale())
	if !ok {
		e.log.WithFields(logrus.Fields{
			"question_id": q.id,
			"type":        qt,
		}).Debug("answer holds no score, skipping")
		if s, isStr := answer.(string); isStr && strings.TrimSpace(s) != "" {
			processText(out, q, answer)
		}
		return
	}
	switch qt {
	case types.QuestionNPS:
		out.NPSScores = append(out.NPSScores, ms)
	case types.QuestionCSAT:
		out.CSATScores = append(out.CSATScores, ms)
	case types.QuestionCES:
		out.CESScores = append(out.CESScores, ms)
	default:
		out.RatingScores = append(out.RatingScores, ms)
	}
}

func processYesNo(out *types.ExtractedMetrics, q question, answer any) {
	var s string
	switch v := answer.(type) {
	case bool:
		s = strconv.FormatBool(v)
	case string:
		s = strings.ToLower(strings.TrimSpace(v))
	default:
		s = strings.ToLower(answerText(v))
	}
	out.YesNoResponses[q.id] = types.YesNoAnswer{
		Answer: answer,
		IsYes:  s == "yes" || s == "true",
		IsNo:   s == "no" || s == "false",
	}
}

func processChoice(out *types.ExtractedMetrics, q question, answer any) {
	options := []string{}
	multiple := false
	if q.def != nil {
		options = append(options, q.def.Options...)
		multiple = q.def.Multiple
	}
	selected := []string{}
	switch v := answer.(type) {
	case []string:
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				selected = append(selected, s)
			}
		}
	case []any:
		for _, item := range v {
			if s := answerText(item); s != "" {
				selected = append(selected, s)
			}
		}
	case string:
		selected = append(selected, metrics.SplitChoices(v)...)
	default:
		if s := answerText(v); s != "" {
			selected = append(selected, s)
		}
	}
	out.MultipleChoiceResponses[q.id] = types.ChoiceAnswer{
		Options:         options,
		SelectedOptions: selected,
		IsMultiple:      multiple || len(selected) > 1,
	}
}

func processText(out *types.ExtractedMetrics, q question, answer any) {
	s := answerText(answer)
	if s == "" {
		return
	}
	out.TextResponses = append(out.TextResponses, types.TextAnswer{
		QuestionID:   q.id,
		QuestionText: q.text,
		Answer:       s,
	})
}

// answerText renders an answer as trimmed text; empty means nothing to keep.
func answerText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case int, int64, int32:
		return fmt.Sprint(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return string(b)
}
