package scoring

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Interpretation maps an overall score to its tier message.
func Interpretation(overall float64) string {
	switch {
	case overall >= 90:
		return "Excellent: this resume is highly optimized for ATS screening"
	case overall >= 80:
		return "Great: this resume should perform well in most ATS screens"
	case overall >= 70:
		return "Good: solid foundation with a few areas to tighten up"
	case overall >= 60:
		return "Fair: several areas need attention before applying broadly"
	case overall >= 50:
		return "Below average: significant improvements recommended"
	default:
		return "Poor: this resume needs substantial rework to pass ATS screening"
	}
}

// componentTier holds the excellent/good/fair cutoffs for one component.
type componentTier struct {
	label     string
	excellent float64
	good      float64
	fair      float64
}

var componentTiers = map[string]componentTier{
	types.ComponentFormatting:      {"Formatting", 18, 15, 12},
	types.ComponentKeywords:        {"Keyword coverage", 22, 18, 14},
	types.ComponentContent:         {"Content quality", 22, 18, 14},
	types.ComponentSkillValidation: {"Skill evidence", 13, 10, 7},
	types.ComponentATS:             {"ATS compatibility", 13, 11, 9},
}

// ComponentFeedback produces a one-line assessment per component.
func ComponentFeedback(c types.ComponentScores) map[string]string {
	values := map[string]float64{
		types.ComponentFormatting:      c.Formatting,
		types.ComponentKeywords:        c.Keywords,
		types.ComponentContent:         c.Content,
		types.ComponentSkillValidation: c.SkillValidation,
		types.ComponentATS:             c.ATSCompatibility,
	}

	feedback := make(map[string]string, len(values))
	for name, value := range values {
		tier := componentTiers[name]
		switch {
		case value >= tier.excellent:
			feedback[name] = fmt.Sprintf("%s is excellent", tier.label)
		case value >= tier.good:
			feedback[name] = fmt.Sprintf("%s is good", tier.label)
		case value >= tier.fair:
			feedback[name] = fmt.Sprintf("%s is fair and could be stronger", tier.label)
		default:
			feedback[name] = fmt.Sprintf("%s needs work", tier.label)
		}
	}
	return feedback
}
