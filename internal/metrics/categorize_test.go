package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeNPS(t *testing.T) {
	for score := 0; score <= 10; score++ {
		want := Detractor
		switch {
		case score >= 9:
			want = Promoter
		case score >= 7:
			want = Passive
		}
		assert.Equal(t, want, CategorizeNPS(score), "score %d", score)
	}
}

func TestCategorizeCSAT(t *testing.T) {
	tests := []struct {
		score, scale int
		want         string
	}{
		{1, 5, VeryDissatisfied},
		{2, 5, Dissatisfied},
		{3, 5, Neutral},
		{4, 5, Satisfied},
		{5, 5, VerySatisfied},
		{1, 10, VeryDissatisfied},
		{3, 10, Dissatisfied},
		{5, 10, Neutral},
		{7, 10, Satisfied},
		{8, 10, Satisfied},
		{9, 10, VerySatisfied},
		{4, 7, Neutral},
		{2, 3, Neutral},
		{1, 1, Neutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeCSAT(tt.score, tt.scale), "score %d scale %d", tt.score, tt.scale)
	}
}

func TestCategorizeCES(t *testing.T) {
	tests := []struct {
		score, scale int
		want         string
	}{
		{1, 7, VeryDifficult},
		{2, 7, Difficult},
		{3, 7, SomewhatDifficult},
		{4, 7, Neutral},
		{5, 7, SomewhatEasy},
		{6, 7, Easy},
		{7, 7, VeryEasy},
		{1, 5, VeryDifficult},
		{2, 5, Difficult},
		{3, 5, Neutral},
		{4, 5, SomewhatEasy},
		{5, 5, VeryEasy},
		{9, 10, Easy},
		{10, 10, VeryEasy},
		{1, 1, Neutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeCES(tt.score, tt.scale), "score %d scale %d", tt.score, tt.scale)
	}
}

func TestCategorize_Totality(t *testing.T) {
	for _, f := range DefaultFamilies() {
		for scale := 1; scale <= 10; scale++ {
			for score := f.MinScore; score <= scale; score++ {
				got := f.Categorize(score, scale)
				require.Contains(t, f.Levels, got, "%s score %d scale %d", f.Type, score, scale)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 50.0, CSAT.Normalize(3, 5))
	assert.Equal(t, 100.0, CES.Normalize(7, 7))
	assert.Equal(t, 0.0, CES.Normalize(1, 7))
	assert.Equal(t, 0.0, CSAT.Normalize(1, 1), "scale of one does not divide by zero")
	assert.Equal(t, 8.0, NPS.Normalize(8, 10), "nps keeps its raw 0-10 value")

	for _, f := range DefaultFamilies() {
		for scale := 1; scale <= 10; scale++ {
			for score := f.MinScore; score <= scale; score++ {
				n := f.Normalize(score, scale)
				assert.GreaterOrEqual(t, n, 0.0)
				assert.LessOrEqual(t, n, 100.0)
			}
		}
	}
}

func TestFamilyScore(t *testing.T) {
	ms, ok := CES.Score("q_effort", "How much effort did it take?", "very easy", nil)
	require.True(t, ok)
	assert.Equal(t, 7, ms.RawScore)
	assert.Equal(t, 7, ms.ScaleMax)
	assert.Equal(t, 100.0, ms.NormalizedScore)
	assert.Equal(t, VeryEasy, ms.Category)
	assert.Equal(t, "How much effort did it take?", ms.QuestionText)

	_, ok = CSAT.Score("q", "How satisfied?", "purple", nil)
	assert.False(t, ok)
}
