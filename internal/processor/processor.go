package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"cx-metrics-go/internal/actionable"
	"cx-metrics-go/internal/aggregator"
	"cx-metrics-go/internal/extractor"
	"cx-metrics-go/internal/logger"
	"cx-metrics-go/internal/sentiment"
	"cx-metrics-go/internal/types"
)

// Analyzer is the downstream sentiment hand-off.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (sentiment.Result, error)
}

// Result is returned by /extract for one survey response.
type Result struct {
	ResponseID string                 `json:"response_id,omitempty"`
	Extracted  types.ExtractedMetrics `json:"extracted"`
	Summary    types.AggregatedResult `json:"summary"`
	Sentiment  *sentiment.Result      `json:"sentiment,omitempty"`
	DurationMs int64                  `json:"duration_ms"`
	Error      string                 `json:"error,omitempty"`
}

// BatchResult is returned for a whole dataset.
type BatchResult struct {
	Results    []Result              `json:"results"`
	Rollup     types.Rollup          `json:"rollup"`
	ActionCard actionable.ActionCard `json:"action_card"`
	DurationMs int64                 `json:"duration_ms"`
}

type Processor struct {
	extractor *extractor.Extractor
	analyzer  Analyzer
	log       *logrus.Entry
}

// New wires a processor. analyzer may be nil to skip sentiment.
func New(ex *extractor.Extractor, analyzer Analyzer, log *logger.Logger) *Processor {
	if ex == nil {
		ex = extractor.New()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Processor{extractor: ex, analyzer: analyzer, log: log.WithField("component", "processor")}
}

// ProcessResponse extracts and summarizes one response, then hands its free text to the
// analyzer. Sentiment failures are recorded on the result and never drop the metrics.
func (p *Processor) ProcessResponse(ctx context.Context, raw types.RawResponse, questions []types.QuestionDefinition) Result {
	start := time.Now()
	extracted := p.extractor.Extract(raw, questions)
	res := Result{
		Extracted: extracted,
		Summary:   aggregator.SummarizeWithFamilies(extracted, p.extractor.Families()),
	}

	if p.analyzer != nil && res.Summary.AllTextForAnalysis != "" {
		s, err := p.analyzer.Analyze(ctx, res.Summary.AllTextForAnalysis)
		if err != nil {
			p.log.WithError(err).Warn("sentiment analysis failed")
			res.Error = fmt.Sprintf("sentiment error: %v", err)
		} else {
			res.Sentiment = &s
		}
	}

	res.DurationMs = time.Since(start).Milliseconds()
	p.log.WithFields(logrus.Fields{
		"questions":   len(raw),
		"nps_scores":  len(extracted.NPSScores),
		"csat_scores": len(extracted.CSATScores),
		"ces_scores":  len(extracted.CESScores),
		"texts":       len(extracted.TextResponses),
		"duration_ms": res.DurationMs,
	}).Debug("response processed")
	return res
}

// ProcessDataset processes every record, then rolls the results up. It stops early when
// ctx is done and returns what was processed so far with the context error.
func (p *Processor) ProcessDataset(ctx context.Context, records []types.SurveyRecord, questions []types.QuestionDefinition) (BatchResult, error) {
	start := time.Now()
	out := BatchResult{Results: make([]Result, 0, len(records))}
	var err error
	for _, rec := range records {
		if err = ctx.Err(); err != nil {
			p.log.WithError(err).WithField("processed", len(out.Results)).Warn("dataset processing interrupted")
			break
		}
		r := p.ProcessResponse(ctx, rec.Answers, questions)
		r.ResponseID = rec.ResponseID
		out.Results = append(out.Results, r)
	}

	summaries := make([]types.AggregatedResult, 0, len(out.Results))
	for _, r := range out.Results {
		summaries = append(summaries, r.Summary)
	}
	out.Rollup = aggregator.Rollup(summaries)
	out.ActionCard = actionable.Generate(out.Rollup)
	out.DurationMs = time.Since(start).Milliseconds()
	p.log.WithFields(logrus.Fields{
		"responses":   len(out.Results),
		"duration_ms": out.DurationMs,
	}).Info("dataset processed")
	if err != nil {
		return out, fmt.Errorf("process dataset: %w", err)
	}
	return out, nil
}
