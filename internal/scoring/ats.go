package scoring

import "github.com/jonathan/ats-scorer/internal/types"

// Thresholds for ATS compatibility deductions and credit.
const (
	heavyGlyphCount      = 20
	lightGlyphCount      = 10
	shortSectionLength   = 20
	richExperienceLength = 100
	richSkillsLength     = 20
)

// ATSScore rates machine-readability out of 15. It starts at the maximum
// and deducts for the location privacy penalty, decorative box-drawing
// glyphs that confuse parsers, and suspiciously short core sections.
func ATSScore(sections types.SectionMap, fullText string, locationPenalty float64) float64 {
	score := types.MaxATSScore

	score -= locationPenalty

	glyphs := 0
	for _, r := range fullText {
		if r >= 0x2500 && r <= 0x257F {
			glyphs++
		}
	}
	switch {
	case glyphs > heavyGlyphCount:
		score -= 2
	case glyphs > lightGlyphCount:
		score -= 1
	}

	short := 0
	for _, name := range []string{types.SectionExperience, types.SectionEducation, types.SectionSkills} {
		if content := sections[name]; content != "" && len(content) < shortSectionLength {
			short++
		}
	}
	switch {
	case short >= 2:
		score -= 2
	case short >= 1:
		score -= 1
	}

	if len(sections[types.SectionExperience]) > richExperienceLength &&
		len(sections[types.SectionSkills]) > richSkillsLength {
		score++
	}

	return clamp(score, 0, types.MaxATSScore)
}
