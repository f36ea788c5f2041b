package skillcheck

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// maxUnvalidatedToList caps how many unproven skills feedback names.
const maxUnvalidatedToList = 5

// GenerateFeedback turns a validation result into reader-facing messages.
func GenerateFeedback(v *types.SkillValidation) []string {
	total := len(v.ValidatedSkills) + len(v.UnvalidatedSkills)
	if total == 0 {
		return []string{"No skills were extracted, so none could be validated"}
	}

	pct := int(v.ValidationPercentage * 100)
	feedback := []string{}

	switch {
	case v.ValidationPercentage >= 0.9:
		feedback = append(feedback, fmt.Sprintf("Excellent: %d%% of listed skills are backed by project or work evidence", pct))
	case v.ValidationPercentage >= 0.7:
		feedback = append(feedback, fmt.Sprintf("Good: %d%% of listed skills are backed by evidence", pct))
	case v.ValidationPercentage >= 0.5:
		feedback = append(feedback, fmt.Sprintf("Only %d%% of listed skills have supporting evidence", pct))
	default:
		feedback = append(feedback, fmt.Sprintf("Most listed skills lack evidence: only %d%% are substantiated", pct))
	}

	if len(v.UnvalidatedSkills) > 0 {
		shown := v.UnvalidatedSkills
		suffix := ""
		if len(shown) > maxUnvalidatedToList {
			suffix = fmt.Sprintf(" and %d more", len(shown)-maxUnvalidatedToList)
			shown = shown[:maxUnvalidatedToList]
		}
		feedback = append(feedback, fmt.Sprintf(
			"Add projects or work bullets demonstrating: %s%s",
			strings.Join(shown, ", "), suffix))
	}

	return feedback
}
