package scoring

import "github.com/jonathan/ats-scorer/internal/types"

// noJDKeywordBonus rewards keyword-dense resumes when there is no job
// description to compare against.
const noJDKeywordBonus = 3.0

// KeywordsScore rates keyword and skill coverage out of 25. With a job
// description, the JD overlap ratio earns up to 5 extra points; without
// one, a resume with at least 10 keywords gets a flat 3.
func KeywordsScore(keywords, skills []string, jd *types.JDComparison) float64 {
	score := 0.0

	switch n := len(keywords); {
	case n >= 20:
		score += 10
	case n >= 15:
		score += 8
	case n >= 10:
		score += 6
	case n >= 5:
		score += 4
	case n >= 3:
		score += 2
	}

	switch n := len(skills); {
	case n >= 15:
		score += 10
	case n >= 10:
		score += 8
	case n >= 7:
		score += 6
	case n >= 5:
		score += 4
	case n >= 3:
		score += 2
	}

	if jd != nil {
		switch overlap := jd.KeywordOverlap; {
		case overlap >= 0.7:
			score += 5
		case overlap >= 0.5:
			score += 4
		case overlap >= 0.3:
			score += 3
		case overlap >= 0.2:
			score += 2
		case overlap >= 0.1:
			score += 1
		}
	} else if len(keywords) >= 10 {
		score += noJDKeywordBonus
	}

	return clamp(score, 0, types.MaxKeywordsScore)
}
