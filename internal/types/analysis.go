package types

import "github.com/google/uuid"

// StageStatus tags how a pipeline stage finished.
type StageStatus string

// Stage statuses. Degraded stages produced documented defaults and a
// warning; failed stages aborted the run.
const (
	StageSuccess  StageStatus = "success"
	StageDegraded StageStatus = "degraded"
	StageFailed   StageStatus = "failed"
)

// Pipeline stage names used for component status and warnings.
const (
	StageExtraction      = "text_extraction"
	StageSkillValidation = "skill_validation"
	StageExperience      = "experience_analysis"
	StagePrivacy         = "location_detection"
	StageJDComparison    = "jd_comparison"
	StageScoring         = "scoring"
)

// AnalysisResult is the aggregate output of a full pipeline run.
type AnalysisResult struct {
	ID               uuid.UUID              `json:"id"`
	Success          bool                   `json:"success"`
	Error            string                 `json:"error,omitempty"`
	ErrorCategory    string                 `json:"error_category,omitempty"`
	ErrorSuggestions []string               `json:"error_suggestions,omitempty"`
	Warnings         []string               `json:"warnings"`
	ComponentStatus  map[string]StageStatus `json:"component_status"`

	Profile         *ResumeProfile      `json:"profile,omitempty"`
	SkillValidation *SkillValidation    `json:"skill_validation,omitempty"`
	Experience      *ExperienceAnalysis `json:"experience,omitempty"`
	Privacy         *PrivacyReport      `json:"privacy,omitempty"`
	JDComparison    *JDComparison       `json:"jd_comparison,omitempty"`
	Grammar         *GrammarResult      `json:"grammar,omitempty"`
	Score           *ScoreBreakdown     `json:"score,omitempty"`
	SkillFeedback   []string            `json:"skill_feedback,omitempty"`
}

// Degraded reports whether any stage finished with documented defaults.
func (r *AnalysisResult) Degraded() bool {
	for _, status := range r.ComponentStatus {
		if status == StageDegraded {
			return true
		}
	}
	return false
}
