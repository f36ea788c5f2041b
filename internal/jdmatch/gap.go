package jdmatch

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
)

// skillsGap collects JD-side skill phrases absent from the resume's
// skills. Candidates are tech entities and one-to-four-word noun chunks
// from the first 5000 characters of the JD. A candidate is excluded when
// it subsumes or is subsumed by any resume skill.
func skillsGap(ann *nlp.Annotation, resumeSkills []string) []string {
	lowerSkills := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		lowerSkills[i] = strings.ToLower(s)
	}

	seen := map[string]bool{}
	gap := []string{}

	consider := func(phrase string, start int) {
		if start >= maxEmbedChars {
			return
		}
		lower := strings.ToLower(strings.TrimSpace(phrase))
		if lower == "" || seen[lower] {
			return
		}
		seen[lower] = true
		for _, skill := range lowerSkills {
			if strings.Contains(skill, lower) || strings.Contains(lower, skill) {
				return
			}
		}
		gap = append(gap, lower)
	}

	for _, e := range ann.EntitiesByLabel(nlp.LabelProduct, nlp.LabelOrg, nlp.LabelLanguage) {
		consider(e.Text, e.Start)
	}
	for _, chunk := range ann.NounChunks {
		words := len(strings.Fields(chunk.Text))
		if words >= 1 && words <= 4 {
			consider(chunk.Text, chunk.Start)
		}
	}

	sort.Strings(gap)
	if len(gap) > skillsGapLimit {
		gap = gap[:skillsGapLimit]
	}
	return gap
}
