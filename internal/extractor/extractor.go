// Package extractor turns a raw survey response into ExtractedMetrics.
//
// Extraction is pure: the same response and question list always produce the same
// result, and malformed answers degrade (skipped or kept as text) instead of failing.
package extractor

import (
	"github.com/sirupsen/logrus"

	"cx-metrics-go/internal/logger"
	"cx-metrics-go/internal/metrics"
	"cx-metrics-go/internal/types"
)

// Extractor holds the family table and a logger. It has no mutable state and is safe
// for concurrent use.
type Extractor struct {
	families metrics.Families
	log      *logrus.Entry
}

type Option func(*Extractor)

// WithFamilies replaces the default NPS/CSAT/CES/rating table.
func WithFamilies(fs metrics.Families) Option {
	return func(e *Extractor) { e.families = fs }
}

func WithLogger(l *logrus.Entry) Option {
	return func(e *Extractor) { e.log = l }
}

func New(opts ...Option) *Extractor {
	e := &Extractor{
		families: metrics.DefaultFamilies(),
		log:      logger.Discard().Entry,
	}
	for _, o := range opts {
		o(e)
	}
	e.log = e.log.WithField("component", "extractor")
	return e
}

// Families returns the table the extractor classifies and scores with.
func (e *Extractor) Families() metrics.Families { return e.families }

// Extract runs the default extractor.
func Extract(raw types.RawResponse, questions []types.QuestionDefinition) types.ExtractedMetrics {
	return New().Extract(raw, questions)
}

// Extract classifies, scores and files every answer of raw. Iteration follows the
// order of raw.
func (e *Extractor) Extract(raw types.RawResponse, questions []types.QuestionDefinition) types.ExtractedMetrics {
	out := types.NewExtractedMetrics()
	for i, a := range raw {
		// answers stored in the output must not alias the caller's slices or maps
		a.Value = cloneValue(a.Value)
		out.AllResponses = append(out.AllResponses, a)

		def := matchDefinition(raw, i, a.QuestionID, questions)
		q := question{id: a.QuestionID, text: a.QuestionID}
		if def != nil {
			q.def = def
			if def.Text != "" {
				q.text = def.Text
			}
		}
		qt := e.resolveType(q, a.Value)
		e.log.WithFields(logrus.Fields{
			"question_id": q.id,
			"type":        qt,
			"has_schema":  def != nil,
		}).Debug("question resolved")
		e.dispatch(&out, qt, q, a.Value)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	}
	return v
}

type question struct {
	id   string
	text string
	def  *types.QuestionDefinition
}

func (q question) explicitScale() *int {
	if q.def == nil {
		return nil
	}
	return q.def.ScaleMax
}

func (e *Extractor) resolveType(q question, answer any) types.QuestionType {
	if q.def != nil && q.def.Type != "" {
		if q.def.Type.Known() {
			return q.def.Type
		}
		return types.QuestionText
	}
	return e.families.Classify(q.text, answer)
}

func (e *Extractor) dispatch(out *types.ExtractedMetrics, qt types.QuestionType, q question, answer any) {
	switch qt {
	case types.QuestionNPS, types.QuestionCSAT, types.QuestionCES, types.QuestionRating:
		e.processScore(out, qt, q, answer)
	case types.QuestionYesNo:
		processYesNo(out, q, answer)
	case types.QuestionMultipleChoice:
		processChoice(out, q, answer)
	default:
		processText(out, q, answer)
	}
}
