package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cx-metrics-go/internal/extractor"
	"cx-metrics-go/internal/metrics"
	"cx-metrics-go/internal/sentiment"
	"cx-metrics-go/internal/types"
)

type fakeAnalyzer struct {
	result sentiment.Result
	err    error
	calls  []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (sentiment.Result, error) {
	f.calls = append(f.calls, text)
	return f.result, f.err
}

func sampleResponse() types.RawResponse {
	return types.RawResponse{
		{QuestionID: "How likely are you to recommend us?", Value: 9.0},
		{QuestionID: "Comments", Value: "Support was slow"},
	}
}

func TestProcessResponse_WithSentiment(t *testing.T) {
	fa := &fakeAnalyzer{result: sentiment.Result{Sentiment: "negative", Score: -0.4}}
	p := New(nil, fa, nil)

	res := p.ProcessResponse(context.Background(), sampleResponse(), nil)
	require.NotNil(t, res.Summary.NPSScore)
	assert.Equal(t, 9, *res.Summary.NPSScore)
	assert.Equal(t, metrics.Promoter, *res.Summary.NPSCategory)
	require.NotNil(t, res.Sentiment)
	assert.Equal(t, "negative", res.Sentiment.Sentiment)
	assert.Empty(t, res.Error)
	assert.Equal(t, []string{"Support was slow"}, fa.calls)
}

func TestProcessResponse_SentimentErrorKeepsMetrics(t *testing.T) {
	fa := &fakeAnalyzer{err: errors.New("gateway down")}
	p := New(nil, fa, nil)

	res := p.ProcessResponse(context.Background(), sampleResponse(), nil)
	assert.Nil(t, res.Sentiment)
	assert.Contains(t, res.Error, "gateway down")
	assert.Equal(t, 9, *res.Summary.NPSScore)
}

func TestProcessResponse_NoTextSkipsAnalyzer(t *testing.T) {
	fa := &fakeAnalyzer{}
	p := New(nil, fa, nil)

	res := p.ProcessResponse(context.Background(), types.RawResponse{{QuestionID: "nps", Value: 3.0}}, nil)
	assert.Empty(t, fa.calls)
	assert.Nil(t, res.Sentiment)
	assert.Equal(t, metrics.Detractor, *res.Summary.NPSCategory)
}

func TestProcessResponse_SummaryUsesExtractorFamilies(t *testing.T) {
	strict := metrics.NPS
	strict.Cutoffs = []int{8, 9}
	fs := metrics.Families{strict, metrics.CSAT, metrics.CES, metrics.Rating}
	p := New(extractor.New(extractor.WithFamilies(fs)), nil, nil)

	for _, raw := range []types.RawResponse{
		{{QuestionID: "nps_product", Value: 9.0}},
		{{QuestionID: "nps_product", Value: 9.0}, {QuestionID: "nps_support", Value: 9.0}},
	} {
		res := p.ProcessResponse(context.Background(), raw, nil)
		for _, s := range res.Extracted.NPSScores {
			assert.Equal(t, metrics.Passive, s.Category)
		}
		require.NotNil(t, res.Summary.NPSCategory)
		assert.Equal(t, 9, *res.Summary.NPSScore)
		assert.Equal(t, metrics.Passive, *res.Summary.NPSCategory, "answers: %d", len(raw))
	}
}

func TestProcessDataset(t *testing.T) {
	records := []types.SurveyRecord{
		{ResponseID: "r1", Answers: types.RawResponse{{QuestionID: "nps", Value: 10.0}}},
		{ResponseID: "r2", Answers: types.RawResponse{{QuestionID: "nps", Value: 2.0}}},
		{ResponseID: "r3", Answers: types.RawResponse{{QuestionID: "nps", Value: 1.0}}},
	}
	p := New(nil, nil, nil)

	out, err := p.ProcessDataset(context.Background(), records, nil)
	require.NoError(t, err)
	require.Len(t, out.Results, 3)
	assert.Equal(t, "r2", out.Results[1].ResponseID)
	assert.Equal(t, 3, out.Rollup.Responses)
	assert.Equal(t, 1, out.Rollup.NPS.Promoters)
	assert.Equal(t, 2, out.Rollup.NPS.Detractors)
	assert.Equal(t, -33.3, *out.Rollup.NPS.Score)
	assert.Contains(t, out.ActionCard.Insight, "NPS is negative")
}

func TestProcessDataset_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(nil, nil, nil)

	out, err := p.ProcessDataset(ctx, []types.SurveyRecord{{ResponseID: "r1"}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.Results)
	assert.Equal(t, 0, out.Rollup.Responses)
}
