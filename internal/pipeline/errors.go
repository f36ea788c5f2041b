package pipeline

import "fmt"

// ErrorCategory classifies fatal pipeline errors for user-facing reporting.
type ErrorCategory string

// Error categories.
const (
	CategoryInputValidation   ErrorCategory = "input_validation"
	CategoryTextExtraction    ErrorCategory = "text_extraction"
	CategoryNLPProcessing     ErrorCategory = "nlp_processing"
	CategorySkillValidation   ErrorCategory = "skill_validation"
	CategoryLocationDetection ErrorCategory = "location_detection"
	CategoryJDComparison      ErrorCategory = "jd_comparison"
	CategoryGrammarCheck      ErrorCategory = "grammar_check"
	CategoryScoring           ErrorCategory = "scoring"
	CategoryPersistence       ErrorCategory = "persistence"
	CategoryUnknown           ErrorCategory = "unknown"
)

// categorySuggestions maps each category to recovery hints shown to the user.
var categorySuggestions = map[ErrorCategory][]string{
	CategoryInputValidation: {
		"Provide resume text that is not empty",
		"Check that the file is plain text, not a binary format",
	},
	CategoryTextExtraction: {
		"Verify the resume uses recognizable section headers (Experience, Education, Skills)",
		"Remove unusual characters or tables from the resume",
	},
	CategoryNLPProcessing: {
		"Retry the analysis",
		"Switch to the heuristic annotator if a remote provider is failing",
	},
	CategoryJDComparison: {
		"Check that the job description file or URL is readable",
		"Run the analysis without a job description",
	},
	CategoryScoring: {
		"Retry the analysis",
		"Report this as a bug if it persists; scoring should never fail on valid input",
	},
	CategoryPersistence: {
		"Check the database URL and that PostgreSQL is reachable",
		"Run without --database-url to skip history persistence",
	},
	CategoryUnknown: {
		"Retry the analysis",
	},
}

// Error is a fatal pipeline error with a category and user-facing guidance.
type Error struct {
	Category    ErrorCategory
	UserMessage string
	Suggestions []string
	Cause       error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.UserMessage, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.UserMessage)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// newError builds a categorized error with the category's standard suggestions.
func newError(category ErrorCategory, userMessage string, cause error) *Error {
	suggestions := categorySuggestions[category]
	if suggestions == nil {
		suggestions = categorySuggestions[CategoryUnknown]
	}
	return &Error{
		Category:    category,
		UserMessage: userMessage,
		Suggestions: suggestions,
		Cause:       cause,
	}
}
