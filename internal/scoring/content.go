package scoring

import (
	"regexp"

	"github.com/jonathan/ats-scorer/internal/types"
)

// achievementPatterns match quantified accomplishments.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+[kKmMbB]\b`),
	regexp.MustCompile(`(?i)\d+\s*(?:users|customers|clients|projects|hours|days|months|years)`),
	regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|grew|saved)\s+(?:by\s+)?\d+`),
}

// maxGrammarTerm is the grammar contribution ceiling inside the content score.
const maxGrammarTerm = 10.0

// ContentScore rates writing quality out of 25: action verb bands,
// quantified achievement bands, and a grammar term that shrinks with the
// checker's penalty.
func ContentScore(actionVerbs []string, fullText string, grammar *types.GrammarResult) float64 {
	score := 0.0

	switch n := len(actionVerbs); {
	case n >= 15:
		score += 10
	case n >= 10:
		score += 8
	case n >= 7:
		score += 6
	case n >= 5:
		score += 4
	case n >= 3:
		score += 2
	}

	achievements := 0
	for _, re := range achievementPatterns {
		achievements += len(re.FindAllString(fullText, -1))
	}
	switch {
	case achievements >= 10:
		score += 5
	case achievements >= 7:
		score += 4
	case achievements >= 5:
		score += 3
	case achievements >= 3:
		score += 2
	case achievements >= 1:
		score += 1
	}

	grammarTerm := maxGrammarTerm
	if grammar != nil {
		grammarTerm = maxGrammarTerm - grammar.PenaltyApplied/2
		if grammarTerm < 0 {
			grammarTerm = 0
		}
	}
	score += grammarTerm

	return clamp(score, 0, types.MaxContentScore)
}
