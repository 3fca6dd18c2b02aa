// Package metrics holds the scoring rules for survey metric families: question
// classification, score parsing, scale resolution, categorization and normalization.
//
// Every NPS/CSAT/CES/rating rule lives in a Family value, so tuning a threshold or
// keyword means editing a table, not a branch.
package metrics

import "cx-metrics-go/internal/types"

// NPS categories.
const (
	Detractor = "detractor"
	Passive   = "passive"
	Promoter  = "promoter"
)

// Satisfaction levels (CSAT and generic ratings).
const (
	VeryDissatisfied = "very_dissatisfied"
	Dissatisfied     = "dissatisfied"
	Neutral          = "neutral"
	Satisfied        = "satisfied"
	VerySatisfied    = "very_satisfied"
)

// Effort levels (CES).
const (
	VeryDifficult     = "very_difficult"
	Difficult         = "difficult"
	SomewhatDifficult = "somewhat_difficult"
	SomewhatEasy      = "somewhat_easy"
	Easy              = "easy"
	VeryEasy          = "very_easy"
)

// Family configures one metric family.
type Family struct {
	Type types.QuestionType

	// MinScore is the lowest valid raw score (0 for NPS, 1 otherwise).
	MinScore int
	// DefaultScale is used when neither the definition nor the question text names a scale.
	DefaultScale int
	// FixedScale families ignore explicit and textual scales (NPS is always 0-10).
	FixedScale bool

	// Keywords are matched case-insensitively as substrings of the question text.
	Keywords []string
	// Lexicon maps qualitative answers to raw scores. Never shared between families.
	Lexicon map[string]int

	// Levels are ordered from worst to best.
	Levels       []string
	NeutralLevel string

	// Cutoffs are inclusive raw-score upper bounds per level, used by fixed-scale families.
	Cutoffs []int
	// LiteralScale maps score n to Levels[n-1] when the question uses exactly this scale.
	LiteralScale int
	// Bands are exclusive upper bounds on the 0..1 scale position for every level but the last.
	Bands []float64
}

// Families is an ordered family table. Order is keyword priority for classification.
type Families []Family

// Lookup returns the family scoring questions of type t.
func (fs Families) Lookup(t types.QuestionType) (Family, bool) {
	for _, f := range fs {
		if f.Type == t {
			return f, true
		}
	}
	return Family{}, false
}

var satisfactionLevels = []string{VeryDissatisfied, Dissatisfied, Neutral, Satisfied, VerySatisfied}

// NPS is the 0-10 likelihood-to-recommend family.
var NPS = Family{
	Type:         types.QuestionNPS,
	MinScore:     0,
	DefaultScale: 10,
	FixedScale:   true,
	Keywords:     []string{"nps", "recommend", "likely to recommend"},
	Lexicon: map[string]int{
		"not at all likely": 0,
		"very unlikely":     1,
		"unlikely":          3,
		"neutral":           5,
		"likely":            8,
		"very likely":       9,
		"extremely likely":  10,
	},
	Levels:       []string{Detractor, Passive, Promoter},
	NeutralLevel: Passive,
	Cutoffs:      []int{6, 8},
}

// CSAT is the customer satisfaction family, 5-point by default.
var CSAT = Family{
	Type:         types.QuestionCSAT,
	MinScore:     1,
	DefaultScale: 5,
	Keywords:     []string{"satisfied", "satisfaction", "csat"},
	Lexicon: map[string]int{
		"very dissatisfied": 1,
		"dissatisfied":      2,
		"neutral":           3,
		"satisfied":         4,
		"very satisfied":    5,
	},
	Levels:       satisfactionLevels,
	NeutralLevel: Neutral,
	LiteralScale: 5,
	Bands:        []float64{0.2, 0.4, 0.6, 0.8},
}

// CES is the customer effort family, 7-point by default. Higher is easier.
var CES = Family{
	Type:         types.QuestionCES,
	MinScore:     1,
	DefaultScale: 7,
	Keywords:     []string{"easy", "difficult", "effort", "ces"},
	Lexicon: map[string]int{
		"very difficult":     1,
		"difficult":          2,
		"somewhat difficult": 3,
		"neutral":            4,
		"somewhat easy":      5,
		"easy":               6,
		"very easy":          7,
	},
	Levels:       []string{VeryDifficult, Difficult, SomewhatDifficult, Neutral, SomewhatEasy, Easy, VeryEasy},
	NeutralLevel: Neutral,
	LiteralScale: 7,
	Bands:        []float64{0.2, 0.35, 0.5, 0.65, 0.8, 0.95},
}

// Rating is the generic rating family. Its categories reuse the satisfaction levels.
var Rating = Family{
	Type:         types.QuestionRating,
	MinScore:     1,
	DefaultScale: 5,
	Keywords:     []string{"rating", "rate", "score"},
	Lexicon: map[string]int{
		"very poor": 1,
		"poor":      2,
		"fair":      3,
		"average":   3,
		"good":      4,
		"very good": 5,
		"excellent": 5,
	},
	Levels:       satisfactionLevels,
	NeutralLevel: Neutral,
	LiteralScale: 5,
	Bands:        []float64{0.2, 0.4, 0.6, 0.8},
}

// DefaultFamilies returns the standard family table in classification priority order.
func DefaultFamilies() Families {
	return Families{NPS, CSAT, CES, Rating}
}
