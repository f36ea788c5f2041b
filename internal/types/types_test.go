package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionMap_NonEmptyCount(t *testing.T) {
	sections := SectionMap{
		SectionSummary:    "Seasoned engineer",
		SectionExperience: "   \n\t",
		SectionSkills:     "Python, Go",
	}

	assert.Equal(t, 2, sections.NonEmptyCount())
	assert.Equal(t, 0, SectionMap{}.NonEmptyCount())
}

func TestLocationMention_Acceptable_CityInHeader(t *testing.T) {
	m := LocationMention{Text: "Seattle", Type: LocationGPE, Section: RegionContactHeader}
	assert.True(t, m.Acceptable())
}

func TestLocationMention_Acceptable_AddressNeverAcceptable(t *testing.T) {
	m := LocationMention{Text: "123 Main Street", Type: LocationAddress, Section: RegionContactHeader}
	assert.False(t, m.Acceptable())

	m.Type = LocationZip
	assert.False(t, m.Acceptable())
}

func TestLocationMention_Acceptable_CityOutsideHeader(t *testing.T) {
	m := LocationMention{Text: "Seattle", Type: LocationGPE, Section: RegionExperience}
	assert.False(t, m.Acceptable())
}

func TestComponentScores_Sum(t *testing.T) {
	c := ComponentScores{Formatting: 18, Keywords: 20, Content: 22, SkillValidation: 12, ATSCompatibility: 14}
	assert.InDelta(t, 86.0, c.Sum(), 1e-9)
}

func TestComponentScores_Get(t *testing.T) {
	c := ComponentScores{Formatting: 18, Keywords: 20}

	assert.Equal(t, 18.0, c.Get(ComponentFormatting))
	assert.Equal(t, 20.0, c.Get(ComponentKeywords))
	assert.Equal(t, 0.0, c.Get("unknown"))
}

func TestScoreBreakdown_BonusPoints(t *testing.T) {
	s := &ScoreBreakdown{Bonuses: []Bonus{
		{Reason: "excellent_skill_validation", Points: 2},
		{Reason: "perfect_grammar", Points: 2},
	}}
	assert.InDelta(t, 4.0, s.BonusPoints(), 1e-9)
}

func TestAnalysisResult_Degraded(t *testing.T) {
	r := &AnalysisResult{ComponentStatus: map[string]StageStatus{
		StageExtraction:      StageSuccess,
		StageSkillValidation: StageSuccess,
	}}
	assert.False(t, r.Degraded())

	r.ComponentStatus[StagePrivacy] = StageDegraded
	assert.True(t, r.Degraded())
}

func TestNeutralGrammarResult_NoErrors(t *testing.T) {
	g := NeutralGrammarResult()

	assert.Equal(t, 0, g.TotalErrors)
	assert.Equal(t, 0.0, g.PenaltyApplied)
	assert.Equal(t, 100.0, g.ErrorFreePercentage)
}

func TestEmptyPrivacyReport_RiskUnknown(t *testing.T) {
	r := EmptyPrivacyReport()

	assert.Equal(t, RiskUnknown, r.PrivacyRisk)
	assert.False(t, r.LocationFound)
	assert.Equal(t, 0.0, r.PenaltyApplied)
	assert.Len(t, r.Recommendations, 1)
	assert.Contains(t, r.Recommendations[0], "Location detection was unavailable")
}

func TestEmptySkillValidation_ZeroValues(t *testing.T) {
	v := EmptySkillValidation()

	assert.Empty(t, v.ValidatedSkills)
	assert.Empty(t, v.UnvalidatedSkills)
	assert.NotNil(t, v.SkillProjectMapping)
	assert.Equal(t, 0.0, v.ValidationScore)
}
