package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestPrintScoreReport_ShowsOverallAndComponents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreBreakdown{
		Overall:        72.5,
		Interpretation: "Good: solid foundation with a few areas to tighten up",
		Components: types.ComponentScores{
			Formatting: 14, Keywords: 18, Content: 20, SkillValidation: 9.5, ATSCompatibility: 11,
		},
		Bonuses:   []types.Bonus{{Reason: "perfect_grammar", Points: 2}},
		Penalties: map[string]float64{"location_privacy": 4},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS SCORE")
	assert.Contains(t, out, "72.5 / 100")
	assert.Contains(t, out, "Formatting")
	assert.Contains(t, out, "+2 perfect_grammar")
	assert.Contains(t, out, "Penalties noted (not deducted)")
}

func TestPrintScoreReport_FeedbackBoxes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreBreakdown{
		CriticalIssues: []string{"Too few relevant keywords for ATS matching"},
		Strengths:      []string{"No grammar errors detected"},
		Improvements:   []string{"Add bullet points and fill out sparse sections"},
	})

	out := buf.String()
	assert.Contains(t, out, "CRITICAL ISSUES")
	assert.Contains(t, out, "STRENGTHS")
	assert.Contains(t, out, "SUGGESTED IMPROVEMENTS")
}

func TestPrintScoreReport_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkillValidation_ListsEvidence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillValidation(&types.SkillValidation{
		ValidatedSkills: []types.SkillEvidence{
			{Skill: "Go", Projects: []string{"Log Analyzer"}},
		},
		UnvalidatedSkills:    []string{"Haskell"},
		ValidationPercentage: 0.5,
	}, []string{"Back more skills with projects"})

	out := buf.String()
	assert.Contains(t, out, "SKILL VALIDATION")
	assert.Contains(t, out, "Go (Log Analyzer)")
	assert.Contains(t, out, "Haskell")
	assert.Contains(t, out, "(50%)")
}

func TestPrintWarnings_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings(nil)
	assert.Empty(t, buf.String())
}

func TestPrintWarnings_PrefixesEach(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings([]string{"skill_validation unavailable, using defaults"})

	out := buf.String()
	assert.Contains(t, out, "WARNINGS")
	assert.Contains(t, out, "⚠ skill_validation unavailable")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestListWithOverflow_CapsAndCounts(t *testing.T) {
	var sb strings.Builder
	listWithOverflow(&sb, []string{"a", "b", "c", "d", "e", "f", "g"}, 5)

	out := sb.String()
	assert.Contains(t, out, "• a")
	assert.Contains(t, out, "• e")
	assert.NotContains(t, out, "• f")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintPrivacyReport_ShowsRiskAndMentions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPrivacyReport(&types.PrivacyReport{
		PrivacyRisk: types.RiskHigh,
		DetectedLocations: []types.LocationMention{
			{Text: "123 Maple Street", Type: types.LocationAddress, Section: types.RegionContactHeader},
		},
		Recommendations: []string{"Remove the street address"},
	})

	out := buf.String()
	assert.Contains(t, out, "LOCATION PRIVACY")
	assert.Contains(t, out, "Risk level: high")
	assert.Contains(t, out, "123 Maple Street")
	assert.Contains(t, out, "Remove the street address")
}

func TestPrintJDComparison_ShowsMatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJDComparison(&types.JDComparison{
		MatchPercentage:    64.2,
		SemanticSimilarity: 0.71,
		MatchedKeywords:    []string{"python"},
		MissingKeywords:    []string{"terraform"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB DESCRIPTION MATCH")
	assert.Contains(t, out, "64.2%")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "terraform")
}

func TestPrintExperience_ShowsMetrics(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(&types.ExperienceAnalysis{
		Score:    14,
		MaxScore: 20,
		Metrics:  types.ExperienceMetrics{TotalJobs: 2, JobsWithDates: 2, JobsWithBullets: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "EXPERIENCE ANALYSIS")
	assert.Contains(t, out, "14.0 / 20")
	assert.Contains(t, out, "Jobs: 2")
}
