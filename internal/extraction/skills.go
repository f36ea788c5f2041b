package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
)

// technicalSkillKeywords is the vocabulary used to recognize skill-like
// noun chunks. Lowercase; multi-word terms are matched as substrings.
var technicalSkillKeywords = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go",
	"rust", "react", "angular", "vue", "node", "django", "flask", "spring",
	"express", "sql", "nosql", "mongodb", "postgresql", "mysql", "redis",
	"elasticsearch", "aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
	"git", "ci/cd", "machine learning", "deep learning", "tensorflow",
	"pytorch", "scikit-learn", "api", "rest", "graphql", "microservices",
	"agile", "scrum", "devops",
}

var technicalSkillSet = func() map[string]bool {
	set := make(map[string]bool, len(technicalSkillKeywords))
	for _, kw := range technicalSkillKeywords {
		set[kw] = true
	}
	return set
}()

// skillDelimiters split the skills section into candidate entries.
var skillDelimiters = func(r rune) bool {
	switch r {
	case ',', '•', '|', ';', '\n', '◦':
		return true
	}
	return false
}

// ExtractSkills combines delimiter-split entries from the skills section
// with annotator evidence (tech entities and skill-like noun chunks).
// The result is deduplicated case-insensitively and sorted.
func ExtractSkills(skillsSection string, ann *nlp.Annotation) []string {
	var candidates []string

	for _, entry := range strings.FieldsFunc(skillsSection, skillDelimiters) {
		entry = strings.Trim(entry, " \t\r.:-*")
		if len(entry) > 1 && len(entry) < 50 {
			candidates = append(candidates, entry)
		}
	}

	if ann != nil {
		for _, e := range ann.EntitiesByLabel(nlp.LabelProduct, nlp.LabelOrg, nlp.LabelLanguage) {
			candidates = append(candidates, e.Text)
		}
		for _, chunk := range ann.NounChunks {
			if matchesTechVocabulary(chunk.Text) {
				candidates = append(candidates, chunk.Text)
			}
		}
	}

	return dedupeSorted(candidates)
}

// matchesTechVocabulary reports whether a phrase names a known technical
// skill: an exact vocabulary term, a term appearing as a whole word, or a
// multi-word term appearing as a substring.
func matchesTechVocabulary(phrase string) bool {
	lower := strings.ToLower(strings.TrimSpace(phrase))
	if technicalSkillSet[lower] {
		return true
	}
	for _, word := range strings.Fields(lower) {
		if technicalSkillSet[word] {
			return true
		}
	}
	for _, kw := range technicalSkillKeywords {
		if strings.Contains(kw, " ") && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// dedupeSorted removes case-insensitive duplicates, keeping the first
// spelling seen, and sorts case-insensitively.
func dedupeSorted(items []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		key := strings.ToLower(item)
		if !seen[key] {
			seen[key] = true
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
