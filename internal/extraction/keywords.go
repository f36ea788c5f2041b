package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/nlp"
)

// Keyword list caps for resumes and job descriptions.
const (
	ResumeKeywordLimit = 20
	JDKeywordLimit     = 30
)

// ExtractKeywords ranks candidate keywords by frequency and returns the
// top n. Candidates are labeled entities, two-to-four-word noun chunks,
// and non-stop noun tokens longer than two characters, all lowercased.
// Ties break by first appearance, keeping the ranking deterministic.
func ExtractKeywords(ann *nlp.Annotation, n int) []string {
	counts := map[string]int{}
	order := map[string]int{}

	add := func(candidate string) {
		candidate = strings.TrimSpace(strings.ToLower(candidate))
		if candidate == "" {
			return
		}
		if _, ok := counts[candidate]; !ok {
			order[candidate] = len(order)
		}
		counts[candidate]++
	}

	for _, e := range ann.EntitiesByLabel(
		nlp.LabelProduct, nlp.LabelOrg, nlp.LabelLanguage,
		nlp.LabelSkill, nlp.LabelGPE, nlp.LabelNORP,
	) {
		add(e.Text)
	}

	for _, chunk := range ann.NounChunks {
		words := len(strings.Fields(chunk.Text))
		if words >= 2 && words <= 4 {
			add(chunk.Text)
		}
	}

	for _, tok := range ann.Tokens {
		if tok.Stop || len(tok.Text) <= 2 {
			continue
		}
		if tok.POS == nlp.POSNoun || tok.POS == nlp.POSProperNoun {
			add(tok.Text)
		}
	}

	keywords := make([]string, 0, len(counts))
	for kw := range counts {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return order[keywords[i]] < order[keywords[j]]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}
