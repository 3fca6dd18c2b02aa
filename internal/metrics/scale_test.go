package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestResolveScaleMax(t *testing.T) {
	tests := []struct {
		name     string
		family   Family
		text     string
		explicit *int
		want     int
	}{
		{"explicit wins", CSAT, "On a scale of 1 to 10", intPtr(4), 4},
		{"explicit used verbatim", CSAT, "", intPtr(1), 1},
		{"1 to 10", CSAT, "On a scale of 1 to 10, how satisfied are you?", nil, 10},
		{"1-7", CSAT, "Satisfaction (1-7)", nil, 7},
		{"spaced dash", Rating, "Rate us 1 - 3", nil, 3},
		{"1 to 5", CES, "From 1 to 5, how easy was it?", nil, 5},
		{"1 to 100 is not a known range", CSAT, "Score 1 to 100", nil, 5},
		{"csat default", CSAT, "How satisfied are you?", nil, 5},
		{"ces default", CES, "How easy was it?", nil, 7},
		{"rating default", Rating, "Rate the food", nil, 5},
		{"nps fixed", NPS, "From 1 to 5, would you recommend us?", intPtr(5), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.family.ResolveScaleMax(tt.text, tt.explicit))
		})
	}
}
