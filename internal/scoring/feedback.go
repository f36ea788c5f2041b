package scoring

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Strengths lists what the resume already does well.
func Strengths(c types.ComponentScores, grammar *types.GrammarResult) []string {
	strengths := []string{}

	if c.Formatting >= 16 {
		strengths = append(strengths, "Clean, well-structured formatting")
	}
	if c.Keywords >= 20 {
		strengths = append(strengths, "Strong keyword and skill coverage")
	}
	if c.Content >= 20 {
		strengths = append(strengths, "Compelling content with quantified achievements")
	}
	if c.SkillValidation >= 12 {
		strengths = append(strengths, "Listed skills are well evidenced by projects and experience")
	}
	if c.ATSCompatibility >= 13 {
		strengths = append(strengths, "Layout parses cleanly in ATS systems")
	}
	if grammar != nil && grammar.TotalErrors == 0 {
		strengths = append(strengths, "No grammar errors detected")
	}

	return strengths
}

// CriticalIssues lists problems that risk immediate rejection.
func CriticalIssues(c types.ComponentScores, grammar *types.GrammarResult, privacy *types.PrivacyReport) []string {
	issues := []string{}

	if grammar != nil && grammar.CriticalErrors > 0 {
		issues = append(issues, fmt.Sprintf("%d critical grammar error(s) found", grammar.CriticalErrors))
	}
	if privacy != nil && privacy.PrivacyRisk == types.RiskHigh {
		issues = append(issues, "Resume exposes precise location details (street address or ZIP code)")
	}
	if c.Formatting < 10 {
		issues = append(issues, "Formatting is too sparse for reliable ATS parsing")
	}
	if c.Keywords < 12 {
		issues = append(issues, "Too few relevant keywords for ATS matching")
	}
	if c.SkillValidation < 7 {
		issues = append(issues, "Most listed skills have no supporting evidence")
	}

	return issues
}

// improvementBand triggers a suggestion when a component score falls
// inside [low, high).
type improvementBand struct {
	low, high float64
	message   string
}

// Improvements suggests fixes for components that are close but not strong.
func Improvements(c types.ComponentScores) []string {
	bands := []struct {
		value float64
		band  improvementBand
	}{
		{c.Formatting, improvementBand{12, 16, "Add bullet points and fill out sparse sections"}},
		{c.Keywords, improvementBand{14, 20, "Work more role-specific keywords into your bullets"}},
		{c.Content, improvementBand{14, 20, "Quantify more achievements with numbers and percentages"}},
		{c.SkillValidation, improvementBand{7, 12, "Back more of your listed skills with concrete projects"}},
		{c.ATSCompatibility, improvementBand{9, 13, "Simplify layout elements that confuse resume parsers"}},
	}

	improvements := []string{}
	for _, b := range bands {
		if b.value >= b.band.low && b.value < b.band.high {
			improvements = append(improvements, b.band.message)
		}
	}
	return improvements
}
