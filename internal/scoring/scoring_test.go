package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestFormattingScore_SectionAndBulletCredits(t *testing.T) {
	sections := types.SectionMap{
		types.SectionExperience: strings.Repeat("x", 60),
		types.SectionEducation:  strings.Repeat("x", 30),
		types.SectionSkills:     strings.Repeat("x", 15),
	}
	fullText := strings.Repeat("• did a thing\n", 5)

	// 3+2+2 section credits, 3 for five bullets, 4 for three sections.
	assert.Equal(t, 14.0, FormattingScore(sections, fullText))
}

func TestFormattingScore_EmptyResume(t *testing.T) {
	assert.Equal(t, 0.0, FormattingScore(types.SectionMap{}, ""))
}

func TestFormattingScore_ClampedAtMax(t *testing.T) {
	sections := types.SectionMap{
		types.SectionExperience: strings.Repeat("x", 200),
		types.SectionEducation:  strings.Repeat("x", 50),
		types.SectionSkills:     strings.Repeat("x", 50),
		types.SectionSummary:    strings.Repeat("x", 50),
		types.SectionProjects:   strings.Repeat("x", 50),
	}
	fullText := strings.Repeat("- bullet line\n", 20)

	assert.Equal(t, types.MaxFormattingScore, FormattingScore(sections, fullText))
}

func TestKeywordsScore_NoJDBonus(t *testing.T) {
	keywords := make([]string, 20)
	skills := make([]string, 15)

	// 10 keywords + 10 skills + 3 flat bonus without a job description.
	assert.Equal(t, 23.0, KeywordsScore(keywords, skills, nil))
}

func TestKeywordsScore_JDOverlapBands(t *testing.T) {
	keywords := make([]string, 5)
	skills := make([]string, 3)
	jd := &types.JDComparison{KeywordOverlap: 0.5}

	assert.Equal(t, 10.0, KeywordsScore(keywords, skills, jd))
}

func TestKeywordsScore_ClampedAtMax(t *testing.T) {
	keywords := make([]string, 25)
	skills := make([]string, 20)
	jd := &types.JDComparison{KeywordOverlap: 0.9}

	assert.Equal(t, types.MaxKeywordsScore, KeywordsScore(keywords, skills, jd))
}

func TestKeywordsScore_SparseResume(t *testing.T) {
	assert.Equal(t, 0.0, KeywordsScore([]string{"one"}, nil, nil))
}

func TestContentScore_NilGrammarGetsFullTerm(t *testing.T) {
	verbs := make([]string, 10)
	text := "Cut latency 40%, saved $500, served 100 users"

	// 8 for verbs, 2 for three achievements, 10 grammar term.
	assert.Equal(t, 20.0, ContentScore(verbs, text, nil))
}

func TestContentScore_GrammarPenaltyShrinksTerm(t *testing.T) {
	grammar := &types.GrammarResult{PenaltyApplied: 8}
	assert.Equal(t, 6.0, ContentScore(nil, "", grammar))

	worst := &types.GrammarResult{PenaltyApplied: 20}
	assert.Equal(t, 0.0, ContentScore(nil, "", worst))
}

func TestATSScore_CleanResume(t *testing.T) {
	sections := types.SectionMap{
		types.SectionExperience: strings.Repeat("x", 150),
		types.SectionSkills:     strings.Repeat("x", 25),
		types.SectionEducation:  strings.Repeat("x", 30),
	}

	// 15 plus the rich-content credit, clamped back to the maximum.
	assert.Equal(t, types.MaxATSScore, ATSScore(sections, "clean text", 0))
}

func TestATSScore_LocationPenaltyDeducted(t *testing.T) {
	assert.Equal(t, 11.0, ATSScore(types.SectionMap{}, "", 4))
}

func TestATSScore_BoxGlyphsDeducted(t *testing.T) {
	assert.Equal(t, 13.0, ATSScore(types.SectionMap{}, strings.Repeat("─", 25), 0))
}

func TestATSScore_ShortSectionsDeducted(t *testing.T) {
	sections := types.SectionMap{
		types.SectionExperience: "short",
		types.SectionSkills:     "tiny",
	}

	assert.Equal(t, 13.0, ATSScore(sections, "", 0))
}

func baseInputs() Inputs {
	return Inputs{
		Profile:         &types.ResumeProfile{Sections: types.SectionMap{}},
		SkillValidation: types.EmptySkillValidation(),
		Privacy:         &types.PrivacyReport{},
		Grammar:         types.NeutralGrammarResult(),
	}
}

func TestScore_BonusesAddedToOverall(t *testing.T) {
	in := baseInputs()
	in.SkillValidation = &types.SkillValidation{
		ValidationPercentage: 0.95,
		ValidationScore:      14.25,
	}

	breakdown := Score(in)

	require.Len(t, breakdown.Bonuses, 2)
	assert.Equal(t, "excellent_skill_validation", breakdown.Bonuses[0].Reason)
	assert.Equal(t, "perfect_grammar", breakdown.Bonuses[1].Reason)

	// content 10 + skill validation 14.25 + ats 15 + 4 bonus = 43.25, rounded.
	assert.Equal(t, 43.3, breakdown.Overall)
	assert.Empty(t, breakdown.Penalties)
}

func TestScore_SparseResumeScoresPoor(t *testing.T) {
	breakdown := Score(baseInputs())

	assert.Less(t, breakdown.Overall, 50.0)
	assert.Contains(t, breakdown.Interpretation, "Poor")
}

func TestScore_StrongResumeScoresHigh(t *testing.T) {
	in := baseInputs()
	in.Profile = &types.ResumeProfile{
		FullText: strings.Repeat("• Increased revenue by 40%\n", 20),
		Sections: types.SectionMap{
			types.SectionSummary:    strings.Repeat("x", 60),
			types.SectionExperience: strings.Repeat("x", 200),
			types.SectionEducation:  strings.Repeat("x", 60),
			types.SectionSkills:     strings.Repeat("x", 60),
			types.SectionProjects:   strings.Repeat("x", 60),
		},
		Skills:      make([]string, 15),
		Keywords:    make([]string, 20),
		ActionVerbs: make([]string, 15),
	}
	in.SkillValidation = &types.SkillValidation{
		ValidationPercentage: 0.9,
		ValidationScore:      13.5,
	}

	breakdown := Score(in)

	assert.GreaterOrEqual(t, breakdown.Overall, 80.0)

	var reasons []string
	for _, b := range breakdown.Bonuses {
		reasons = append(reasons, b.Reason)
	}
	assert.Contains(t, reasons, "excellent_skill_validation")
	assert.Contains(t, reasons, "perfect_grammar")
	assert.Empty(t, breakdown.Penalties)
}

func TestScore_GoodValidationBonus(t *testing.T) {
	in := baseInputs()
	in.SkillValidation = &types.SkillValidation{ValidationPercentage: 0.85}

	breakdown := Score(in)

	var reasons []string
	for _, b := range breakdown.Bonuses {
		reasons = append(reasons, b.Reason)
	}
	assert.Contains(t, reasons, "good_skill_validation")
	assert.NotContains(t, reasons, "excellent_skill_validation")
}

func TestScore_PenaltiesAreDisplayOnly(t *testing.T) {
	in := baseInputs()
	in.Grammar = &types.GrammarResult{TotalErrors: 4, PenaltyApplied: 8}
	in.Privacy = &types.PrivacyReport{PenaltyApplied: 4}

	breakdown := Score(in)

	assert.Equal(t, 8.0, breakdown.Penalties["grammar"])
	assert.Equal(t, 4.0, breakdown.Penalties["location_privacy"])

	// The overall score is the component sum plus bonuses; the recorded
	// penalties already live inside the content and ATS components.
	assert.InDelta(t, breakdown.Components.Sum()+breakdown.BonusPoints(), breakdown.Overall, 0.05)
}

func TestScore_Deterministic(t *testing.T) {
	in := baseInputs()
	in.Profile.Keywords = []string{"go", "python", "docker"}

	first := Score(in)
	second := Score(in)

	assert.Equal(t, first.Overall, second.Overall)
	assert.Equal(t, first.Components, second.Components)
	assert.Equal(t, first.Improvements, second.Improvements)
}

func TestInterpretation_Bands(t *testing.T) {
	assert.Contains(t, Interpretation(92), "Excellent")
	assert.Contains(t, Interpretation(85), "Great")
	assert.Contains(t, Interpretation(73), "Good")
	assert.Contains(t, Interpretation(61), "Fair")
	assert.Contains(t, Interpretation(55), "Below average")
	assert.Contains(t, Interpretation(30), "Poor")
}

func TestComponentFeedback_Tiers(t *testing.T) {
	feedback := ComponentFeedback(types.ComponentScores{
		Formatting: 19,
		Keywords:   10,
	})

	assert.Contains(t, feedback[types.ComponentFormatting], "excellent")
	assert.Contains(t, feedback[types.ComponentKeywords], "needs work")
}

func TestImprovements_BandsAreHalfOpen(t *testing.T) {
	inBand := Improvements(types.ComponentScores{Formatting: 13})
	assert.Contains(t, inBand, "Add bullet points and fill out sparse sections")

	aboveBand := Improvements(types.ComponentScores{Formatting: 16})
	assert.NotContains(t, aboveBand, "Add bullet points and fill out sparse sections")
}

func TestCriticalIssues_HighPrivacyRisk(t *testing.T) {
	issues := CriticalIssues(
		types.ComponentScores{Formatting: 15, Keywords: 15, SkillValidation: 8},
		nil,
		&types.PrivacyReport{PrivacyRisk: types.RiskHigh},
	)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "location details")
}

func TestStrengths_PerfectGrammarListed(t *testing.T) {
	strengths := Strengths(types.ComponentScores{}, types.NeutralGrammarResult())
	assert.Contains(t, strengths, "No grammar errors detected")
}
