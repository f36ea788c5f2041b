package scoring

import (
	"math"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Bonus thresholds and values.
const (
	excellentValidationPct = 0.9
	goodValidationPct      = 0.8

	excellentValidationBonus = 2.0
	goodValidationBonus      = 1.0
	perfectGrammarBonus      = 2.0
)

// Inputs gathers everything the scoring engine consumes. JD may be nil
// when no job description was supplied; the others use their neutral
// defaults when a stage was degraded.
type Inputs struct {
	Profile         *types.ResumeProfile
	SkillValidation *types.SkillValidation
	Privacy         *types.PrivacyReport
	JD              *types.JDComparison
	Grammar         *types.GrammarResult
}

// Score computes the full breakdown. Penalties are recorded for display
// only: grammar is already inside the content score and the location
// penalty inside the ATS score, so neither touches the overall sum again.
// The computation is pure; identical inputs always produce an identical
// breakdown.
func Score(in Inputs) *types.ScoreBreakdown {
	components := types.ComponentScores{
		Formatting:       FormattingScore(in.Profile.Sections, in.Profile.FullText),
		Keywords:         KeywordsScore(in.Profile.Keywords, in.Profile.Skills, in.JD),
		Content:          ContentScore(in.Profile.ActionVerbs, in.Profile.FullText, in.Grammar),
		SkillValidation:  clamp(in.SkillValidation.ValidationScore, 0, types.MaxSkillValidationScore),
		ATSCompatibility: ATSScore(in.Profile.Sections, in.Profile.FullText, in.Privacy.PenaltyApplied),
	}

	breakdown := &types.ScoreBreakdown{
		Components: components,
		Bonuses:    []types.Bonus{},
		Penalties:  map[string]float64{},
	}

	switch pct := in.SkillValidation.ValidationPercentage; {
	case pct >= excellentValidationPct:
		breakdown.Bonuses = append(breakdown.Bonuses, types.Bonus{
			Reason: "excellent_skill_validation", Points: excellentValidationBonus,
		})
	case pct >= goodValidationPct:
		breakdown.Bonuses = append(breakdown.Bonuses, types.Bonus{
			Reason: "good_skill_validation", Points: goodValidationBonus,
		})
	}
	if in.Grammar != nil && in.Grammar.TotalErrors == 0 {
		breakdown.Bonuses = append(breakdown.Bonuses, types.Bonus{
			Reason: "perfect_grammar", Points: perfectGrammarBonus,
		})
	}

	if in.Grammar != nil && in.Grammar.PenaltyApplied > 0 {
		breakdown.Penalties["grammar"] = in.Grammar.PenaltyApplied
	}
	if in.Privacy.PenaltyApplied > 0 {
		breakdown.Penalties["location_privacy"] = in.Privacy.PenaltyApplied
	}

	overall := clamp(components.Sum()+breakdown.BonusPoints(), 0, types.MaxOverallScore)
	breakdown.Overall = math.Round(overall*10) / 10

	breakdown.Interpretation = Interpretation(breakdown.Overall)
	breakdown.ComponentFeedback = ComponentFeedback(components)
	breakdown.Strengths = Strengths(components, in.Grammar)
	breakdown.CriticalIssues = CriticalIssues(components, in.Grammar, in.Privacy)
	breakdown.Improvements = Improvements(components)

	return breakdown
}
