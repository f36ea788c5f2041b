package types

// GrammarResult summarizes grammar checking over the resume text.
type GrammarResult struct {
	TotalErrors         int     `json:"total_errors"`
	CriticalErrors      int     `json:"critical_errors"`
	ModerateErrors      int     `json:"moderate_errors"`
	MinorErrors         int     `json:"minor_errors"`
	PenaltyApplied      float64 `json:"penalty_applied"`
	ErrorFreePercentage float64 `json:"error_free_percentage"`
}

// NeutralGrammarResult returns the zero-error result used when grammar
// checking is disabled or unavailable.
func NeutralGrammarResult() *GrammarResult {
	return &GrammarResult{ErrorFreePercentage: 100.0}
}
