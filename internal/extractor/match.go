package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"cx-metrics-go/internal/types"
)

var positionalID = regexp.MustCompile(`^q_(\d+)$`)

// matchDefinition finds the schema for the answer at position idx.
// Lookup order: exact id, "q_<n>" (zero-based), position, token overlap with the text.
// Positional candidates whose id names another answer of raw are not used.
func matchDefinition(raw types.RawResponse, idx int, questionID string, questions []types.QuestionDefinition) *types.QuestionDefinition {
	if len(questions) == 0 {
		return nil
	}
	for i := range questions {
		if questions[i].ID != "" && questions[i].ID == questionID {
			return &questions[i]
		}
	}
	usable := func(i int) bool {
		if i < 0 || i >= len(questions) {
			return false
		}
		id := questions[i].ID
		return id == "" || !raw.Has(id)
	}
	if m := positionalID.FindStringSubmatch(questionID); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && usable(n) {
			return &questions[n]
		}
	}
	if usable(idx) {
		return &questions[idx]
	}

	want := tokenSet(questionID)
	best, bestScore := -1, 0
	for i := range questions {
		score := 0
		for tok := range tokenSet(questions[i].Text) {
			if want[tok] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 {
		return &questions[best]
	}
	return nil
}

func tokenSet(s string) map[string]bool {
	out := map[string]bool{}
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(tok) >= 3 {
			out[tok] = true
		}
	}
	return out
}
