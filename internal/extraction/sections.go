// Package extraction splits resume text into canonical sections and derives
// structured data from them: contact info, skills, projects, keywords, and
// action verbs.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// maxHeaderLength caps how long a line can be and still count as a
// section header.
const maxHeaderLength = 100

// sectionPatterns match whole header lines, optionally followed by a colon.
// Order matters: the first matching section wins for ambiguous headers.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{types.SectionSummary, headerRe(`professional\s+summary|summary|profile|objective|career\s+objective`)},
	{types.SectionExperience, headerRe(`work\s+experience|professional\s+experience|experience|employment\s+history|work\s+history`)},
	{types.SectionEducation, headerRe(`education|academic\s+background|qualifications`)},
	{types.SectionSkills, headerRe(`skills|technical\s+skills|core\s+competencies|competencies|expertise`)},
	{types.SectionProjects, headerRe(`projects|personal\s+projects|key\s+projects|portfolio`)},
}

func headerRe(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^\s*(?:` + alternatives + `)\s*:?\s*$`)
}

// SplitSections partitions resume text by header lines. A line is a header
// iff it matches a section pattern and is shorter than 100 characters.
// Content before the first header is discarded. Every canonical section
// name is present in the result; sections without a header map to "".
func SplitSections(text string) types.SectionMap {
	sections := types.SectionMap{}
	for _, name := range types.SectionNames() {
		sections[name] = ""
	}
	buffers := map[string]*strings.Builder{}

	current := ""
	for _, line := range strings.Split(text, "\n") {
		if name, ok := matchHeader(line); ok {
			current = name
			if buffers[current] == nil {
				buffers[current] = &strings.Builder{}
			}
			continue
		}
		if current == "" {
			continue
		}
		buffers[current].WriteString(line)
		buffers[current].WriteString("\n")
	}

	for name, buf := range buffers {
		sections[name] = strings.TrimSpace(buf.String())
	}
	return sections
}

func matchHeader(line string) (string, bool) {
	if len(line) >= maxHeaderLength || strings.TrimSpace(line) == "" {
		return "", false
	}
	for _, sp := range sectionPatterns {
		if sp.pattern.MatchString(line) {
			return sp.name, true
		}
	}
	return "", false
}
