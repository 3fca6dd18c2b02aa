package actionable

import (
	"fmt"
	"strings"

	"cx-metrics-go/internal/types"
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Below this normalized score (0-100) CSAT or CES is treated as a problem.
const lowNormalizedScore = 50.0

// Generate picks the single most pressing action for a rollup.
// Precedence: negative NPS, high effort with friction, low satisfaction.
func Generate(r types.Rollup) ActionCard {
	if r.NPS.Score != nil && *r.NPS.Score < 0 {
		return ActionCard{
			Insight: fmt.Sprintf("NPS is negative (%.1f) with %d detractors out of %d", *r.NPS.Score, r.NPS.Detractors, r.NPS.Promoters+r.NPS.Passives+r.NPS.Detractors),
			Action:  "Close the loop with every detractor within 48h; route verbatims to the owning team",
			Impact:  "Recover at-risk customers and stop negative word of mouth",
		}
	}
	if r.AvgCESNormalized != nil && *r.AvgCESNormalized < lowNormalizedScore && len(r.TopFrictionPoints) > 0 {
		return ActionCard{
			Insight: fmt.Sprintf("High customer effort (%.0f/100); top friction: %s", *r.AvgCESNormalized, strings.Join(r.TopFrictionPoints, ", ")),
			Action:  "Map the journey steps behind the friction points and remove the hardest one first",
			Impact:  "Lower effort, fewer repeat contacts",
		}
	}
	if r.AvgCSATNormalized != nil && *r.AvgCSATNormalized < lowNormalizedScore {
		insight := fmt.Sprintf("Low satisfaction (%.0f/100)", *r.AvgCSATNormalized)
		if len(r.TopThemes) > 0 {
			insight += "; recurring themes: " + strings.Join(r.TopThemes, ", ")
		}
		return ActionCard{
			Insight: insight,
			Action:  "Review low-scoring responses by theme and assign owners per theme",
			Impact:  "Raise CSAT on the themes customers mention most",
		}
	}
	return ActionCard{
		Insight: "No strong dissatisfaction pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}
