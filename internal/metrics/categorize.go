package metrics

// Categorize maps a raw score on a scale to the family's level.
// It is total: every (score, scaleMax) pair yields one of f.Levels.
func (f Family) Categorize(score, scaleMax int) string {
	if len(f.Levels) == 0 {
		return ""
	}
	last := f.Levels[len(f.Levels)-1]
	if f.FixedScale {
		for i, c := range f.Cutoffs {
			if score <= c {
				return f.Levels[i]
			}
		}
		return last
	}
	if f.LiteralScale > 0 && scaleMax == f.LiteralScale && len(f.Levels) == f.LiteralScale &&
		score >= 1 && score <= scaleMax {
		return f.Levels[score-1]
	}
	if scaleMax <= 1 {
		return f.NeutralLevel
	}
	pos := float64(score-1) / float64(scaleMax-1)
	for i, b := range f.Bands {
		if pos < b {
			return f.Levels[i]
		}
	}
	return last
}

// Normalize rescales a raw score to 0-100. Fixed-scale families report the raw score as is.
func (f Family) Normalize(score, scaleMax int) float64 {
	if f.FixedScale {
		return float64(score)
	}
	if scaleMax <= 1 {
		return 0
	}
	return float64(score-1) / float64(scaleMax-1) * 100
}

// CategorizeNPS buckets a 0-10 recommendation score.
func CategorizeNPS(score int) string { return NPS.Categorize(score, NPS.DefaultScale) }

// CategorizeCSAT returns the satisfaction level for a CSAT score.
func CategorizeCSAT(score, scaleMax int) string { return CSAT.Categorize(score, scaleMax) }

// CategorizeCES returns the effort level for a CES score.
func CategorizeCES(score, scaleMax int) string { return CES.Categorize(score, scaleMax) }
