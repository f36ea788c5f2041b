package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
)

// actionVerbs is the curated list of resume action verbs, lowercase.
var actionVerbs = map[string]bool{
	"achieved": true, "adapted": true, "administered": true, "analyzed": true,
	"architected": true, "automated": true, "built": true, "collaborated": true,
	"completed": true, "conducted": true, "configured": true, "created": true,
	"delivered": true, "demonstrated": true, "designed": true, "developed": true,
	"directed": true, "drove": true, "enhanced": true, "established": true,
	"executed": true, "expanded": true, "facilitated": true, "generated": true,
	"implemented": true, "improved": true, "increased": true, "initiated": true,
	"integrated": true, "launched": true, "led": true, "maintained": true,
	"managed": true, "migrated": true, "optimized": true, "orchestrated": true,
	"organized": true, "performed": true, "planned": true, "produced": true,
	"programmed": true, "reduced": true, "refactored": true, "resolved": true,
	"restructured": true, "scaled": true, "spearheaded": true, "streamlined": true,
	"strengthened": true, "supervised": true, "supported": true, "transformed": true,
	"upgraded": true,
}

var (
	bulletPrefixRe = regexp.MustCompile(`^\s*(?:[•\-*◦]|\d+\.)\s*`)
	wordTrimRe     = regexp.MustCompile(`[^a-z]`)
)

// ExtractActionVerbs collects the leading verbs of resume lines. A line's
// first word counts when it is in the curated verb list, or when the line
// is a bullet and the word is verb-shaped. Returns a sorted set.
func ExtractActionVerbs(text string) []string {
	found := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		isBullet := bulletPrefixRe.MatchString(line)
		line = bulletPrefixRe.ReplaceAllString(line, "")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		word := wordTrimRe.ReplaceAllString(strings.ToLower(fields[0]), "")
		if word == "" {
			continue
		}
		if actionVerbs[word] || (isBullet && nlp.IsLikelyVerb(word)) {
			found[word] = true
		}
	}

	verbs := make([]string, 0, len(found))
	for v := range found {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// IsActionVerb reports whether a word is in the curated action verb list.
func IsActionVerb(word string) bool {
	return actionVerbs[strings.ToLower(word)]
}
