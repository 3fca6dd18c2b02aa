package metrics

import (
	"strings"

	"cx-metrics-go/internal/types"
)

var yesNoWords = map[string]bool{"yes": true, "no": true, "true": true, "false": true}

// Classify infers the question type from its text (or id) and answer using the
// default family table.
func Classify(questionText string, answer any) types.QuestionType {
	return DefaultFamilies().Classify(questionText, answer)
}

// Classify infers the question type. Family keywords win in table order; then the
// answer shape decides; anything left over is text. It always returns a type.
func (fs Families) Classify(questionText string, answer any) types.QuestionType {
	text := strings.ToLower(questionText)
	for _, f := range fs {
		for _, kw := range f.Keywords {
			if strings.Contains(text, kw) {
				return f.Type
			}
		}
	}

	switch v := answer.(type) {
	case bool:
		return types.QuestionYesNo
	case []any, []string:
		return types.QuestionMultipleChoice
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if yesNoWords[s] {
			return types.QuestionYesNo
		}
		if strings.Contains(s, ",") && len(SplitChoices(s)) > 1 {
			return types.QuestionMultipleChoice
		}
	}

	if n, ok := numericLike(answer); ok && n >= 0 && n <= 10 {
		switch {
		case n == 0 || strings.Contains(text, "nps"):
			return types.QuestionNPS
		case strings.Contains(text, "csat"):
			return types.QuestionCSAT
		case strings.Contains(text, "ces"):
			return types.QuestionCES
		default:
			return types.QuestionRating
		}
	}
	return types.QuestionText
}

// SplitChoices splits a comma separated answer into trimmed, non-empty options.
func SplitChoices(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
