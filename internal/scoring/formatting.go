// Package scoring computes the bounded component scores, bonuses, and
// generated feedback that make up the final score breakdown.
package scoring

import (
	"regexp"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Minimum section lengths for formatting credit.
const (
	minExperienceLength = 50
	minEducationLength  = 20
	minSkillsLength     = 10
	minSummaryLength    = 30
	minProjectsLength   = 30
)

var bulletLineRe = regexp.MustCompile(`(?m)^\s*(?:[•\-*◦]|\d+\.)`)

// FormattingScore rates structure out of 20: section length credits,
// bullet usage bands, and section count bands.
func FormattingScore(sections types.SectionMap, fullText string) float64 {
	score := 0.0

	if len(sections[types.SectionExperience]) > minExperienceLength {
		score += 3
	}
	if len(sections[types.SectionEducation]) > minEducationLength {
		score += 2
	}
	if len(sections[types.SectionSkills]) > minSkillsLength {
		score += 2
	}
	if len(sections[types.SectionSummary]) > minSummaryLength {
		score += 1.5
	}
	if len(sections[types.SectionProjects]) > minProjectsLength {
		score += 1.5
	}

	bullets := len(bulletLineRe.FindAllString(fullText, -1))
	switch {
	case bullets >= 15:
		score += 5
	case bullets >= 10:
		score += 4
	case bullets >= 5:
		score += 3
	case bullets >= 3:
		score += 2
	case bullets >= 1:
		score += 1
	}

	switch count := sections.NonEmptyCount(); {
	case count >= 4:
		score += 5
	case count >= 3:
		score += 4
	case count >= 2:
		score += 3
	case count >= 1:
		score += 2
	}

	return clamp(score, 0, types.MaxFormattingScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
