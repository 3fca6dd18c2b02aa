package types

// MetricScore is one scored question of a metric family.
type MetricScore struct {
	QuestionID      string  `json:"question_id"`
	QuestionText    string  `json:"question_text"`
	RawScore        int     `json:"raw_score"`
	ScaleMax        int     `json:"scale_max"`
	NormalizedScore float64 `json:"normalized_score"`
	Category        string  `json:"category"`
}

type YesNoAnswer struct {
	Answer any  `json:"answer"`
	IsYes  bool `json:"is_yes"`
	IsNo   bool `json:"is_no"`
}

type TextAnswer struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
}

type ChoiceAnswer struct {
	Options         []string `json:"options"`
	SelectedOptions []string `json:"selected_options"`
	IsMultiple      bool     `json:"is_multiple"`
}

// ExtractedMetrics is everything pulled out of a single RawResponse.
// It is always rebuilt in full from the response.
type ExtractedMetrics struct {
	NPSScores               []MetricScore           `json:"nps_scores"`
	CSATScores              []MetricScore           `json:"csat_scores"`
	CESScores               []MetricScore           `json:"ces_scores"`
	RatingScores            []MetricScore           `json:"rating_scores"`
	YesNoResponses          map[string]YesNoAnswer  `json:"yes_no_responses"`
	TextResponses           []TextAnswer            `json:"text_responses"`
	MultipleChoiceResponses map[string]ChoiceAnswer `json:"multiple_choice_responses"`
	AllResponses            []Answer                `json:"all_responses"`
}

// NewExtractedMetrics returns an ExtractedMetrics with every collection empty but non-nil.
func NewExtractedMetrics() ExtractedMetrics {
	return ExtractedMetrics{
		NPSScores:               []MetricScore{},
		CSATScores:              []MetricScore{},
		CESScores:               []MetricScore{},
		RatingScores:            []MetricScore{},
		YesNoResponses:          map[string]YesNoAnswer{},
		TextResponses:           []TextAnswer{},
		MultipleChoiceResponses: map[string]ChoiceAnswer{},
		AllResponses:            []Answer{},
	}
}

// AggregatedResult is the per-response summary handed to callers.
type AggregatedResult struct {
	NPSScore            *int     `json:"nps_score"`
	NPSCategory         *string  `json:"nps_category"`
	CSATScore           *int     `json:"csat_score"`
	SatisfactionLevel   *string  `json:"satisfaction_level"`
	CSATNormalizedScore *float64 `json:"csat_normalized_score"`
	CESScore            *int     `json:"ces_score"`
	EffortLevel         *string  `json:"effort_level"`
	CESNormalizedScore  *float64 `json:"ces_normalized_score"`
	OverallRating       *float64 `json:"overall_rating"`
	TextFeedbackSummary string   `json:"text_feedback_summary"`
	AllTextForAnalysis  string   `json:"all_text_for_analysis,omitempty"`
	FrictionPoints      []string `json:"friction_points"`
	KeyThemes           []string `json:"key_themes"`
}

// NPSBreakdown counts representative NPS categories across responses.
type NPSBreakdown struct {
	Promoters  int      `json:"promoters"`
	Passives   int      `json:"passives"`
	Detractors int      `json:"detractors"`
	Score      *float64 `json:"score"`
}

// Rollup combines many AggregatedResults.
type Rollup struct {
	Responses          int            `json:"responses"`
	NPS                NPSBreakdown   `json:"nps"`
	AvgCSATNormalized  *float64       `json:"avg_csat_normalized"`
	AvgCESNormalized   *float64       `json:"avg_ces_normalized"`
	AvgOverallRating   *float64       `json:"avg_overall_rating"`
	TopThemes          []string       `json:"top_themes"`
	TopFrictionPoints  []string       `json:"top_friction_points"`
	SatisfactionLevels map[string]int `json:"satisfaction_levels"`
	EffortLevels       map[string]int `json:"effort_levels"`
}
