package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Project field caps.
const (
	minProjectBlockLength  = 20
	maxProjectTitleLength  = 200
	maxProjectDescLength   = 1000
	maxProjectEntityOffset = 1000
)

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// ExtractProjects parses the projects section into entries. Blocks are
// separated by blank lines; blocks shorter than 20 characters are skipped.
// The annotation, when given, must cover the projects section text so
// entity offsets can be assigned to blocks.
func ExtractProjects(projectsSection string, ann *nlp.Annotation) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if strings.TrimSpace(projectsSection) == "" {
		return projects
	}

	offset := 0
	for _, block := range blankLineRe.Split(projectsSection, -1) {
		start := strings.Index(projectsSection[offset:], block)
		if start >= 0 {
			start += offset
			offset = start + len(block)
		}

		if len(strings.TrimSpace(block)) < minProjectBlockLength {
			continue
		}

		entry := parseProjectBlock(block)
		if ann != nil && start >= 0 {
			entry.Technologies = blockTechnologies(ann, start, start+len(block))
		}
		projects = append(projects, entry)
	}

	return projects
}

func parseProjectBlock(block string) types.ProjectEntry {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	title := strings.TrimLeft(lines[0], "•-*0123456789. \t")
	title = strings.TrimSpace(title)
	if len(title) > maxProjectTitleLength {
		title = title[:maxProjectTitleLength]
	}

	description := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	if len(description) > maxProjectDescLength {
		description = description[:maxProjectDescLength]
	}

	return types.ProjectEntry{Title: title, Description: description}
}

// blockTechnologies collects tech entities whose offsets fall inside the
// block, capped to the block's first 1000 characters.
func blockTechnologies(ann *nlp.Annotation, start, end int) []string {
	limit := start + maxProjectEntityOffset
	if end > limit {
		end = limit
	}

	var techs []string
	for _, e := range ann.EntitiesByLabel(nlp.LabelProduct, nlp.LabelOrg, nlp.LabelLanguage) {
		if e.Start >= start && e.Start < end {
			techs = append(techs, e.Text)
		}
	}
	return dedupeSorted(techs)
}
