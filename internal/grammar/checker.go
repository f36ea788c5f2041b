// Package grammar provides grammar checking behind a small interface.
// The neutral checker is the default: grammar scanning is conservative by
// nature and a resume should not lose points to a checker that is not
// enabled deliberately.
package grammar

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Penalty weights per error severity, and the overall cap.
const (
	criticalWeight = 5.0
	moderateWeight = 2.0
	minorWeight    = 0.5
	maxPenalty     = 20.0
)

// Checker reports grammar errors in text.
type Checker interface {
	Check(ctx context.Context, text string) (*types.GrammarResult, error)
}

// NeutralChecker reports no errors. It is what ships enabled by default.
type NeutralChecker struct{}

// Check returns the zero-error result.
func (NeutralChecker) Check(_ context.Context, _ string) (*types.GrammarResult, error) {
	return types.NeutralGrammarResult(), nil
}

// Pattern tables for the heuristic checker. RE2 has no backreferences,
// so duplicated-word detection lists common function words explicitly.
var (
	criticalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(the the|a a|an an|is is|to to|and and|of of|in in|for for)\b`),
	}
	moderatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bi\b`), // lowercase standalone I
		regexp.MustCompile(`(?i)\b(dont|cant|wont|doesnt|isnt|didnt|havent|wasnt)\b`),
		regexp.MustCompile(`(?i)\b(alot|recieve|seperate|definately|occured|untill|teh|wich)\b`),
	}
	minorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[^\S\n][^\S\n]+`), // runs of spaces
		regexp.MustCompile(` [,.;:]`),
		regexp.MustCompile(`,[A-Za-z]`),
	}
)

// HeuristicChecker finds common mechanical errors with pattern matching.
type HeuristicChecker struct{}

// NewHeuristicChecker creates the pattern-based checker.
func NewHeuristicChecker() *HeuristicChecker {
	return &HeuristicChecker{}
}

// Check counts pattern hits by severity and derives the penalty
// (5 per critical, 2 per moderate, 0.5 per minor, capped at 20).
func (HeuristicChecker) Check(_ context.Context, text string) (*types.GrammarResult, error) {
	result := &types.GrammarResult{}

	for _, re := range criticalPatterns {
		result.CriticalErrors += len(re.FindAllString(text, -1))
	}
	for _, re := range moderatePatterns {
		result.ModerateErrors += len(re.FindAllString(text, -1))
	}
	for _, re := range minorPatterns {
		result.MinorErrors += len(re.FindAllString(text, -1))
	}

	result.TotalErrors = result.CriticalErrors + result.ModerateErrors + result.MinorErrors

	penalty := criticalWeight*float64(result.CriticalErrors) +
		moderateWeight*float64(result.ModerateErrors) +
		minorWeight*float64(result.MinorErrors)
	if penalty > maxPenalty {
		penalty = maxPenalty
	}
	result.PenaltyApplied = penalty

	words := len(strings.Fields(text))
	result.ErrorFreePercentage = 100.0
	if words > 0 {
		pct := 100.0 - float64(result.TotalErrors)/float64(words)*100.0
		if pct < 0 {
			pct = 0
		}
		result.ErrorFreePercentage = pct
	}

	return result, nil
}
