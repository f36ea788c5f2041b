package types

// MaxExperienceScore is the ceiling for the informational experience score.
const MaxExperienceScore = 20.0

// ExperienceMetrics counts quality signals in the experience section.
type ExperienceMetrics struct {
	TotalJobs              int `json:"total_jobs"`
	JobsWithDates          int `json:"jobs_with_dates"`
	JobsWithBullets        int `json:"jobs_with_bullets"`
	JobsWithMetrics        int `json:"jobs_with_metrics"`
	ActionVerbsUsed        int `json:"action_verbs_used"`
	QuantifiedAchievements int `json:"quantified_achievements"`
}

// ExperienceAnalysis is the output of the experience section analysis stage.
// Its score is informational and not part of the overall score components.
type ExperienceAnalysis struct {
	Score        float64           `json:"score"`
	MaxScore     float64           `json:"max_score"`
	Metrics      ExperienceMetrics `json:"metrics"`
	Feedback     []string          `json:"feedback"`
	Strengths    []string          `json:"strengths"`
	Improvements []string          `json:"improvements"`
}

// DefaultExperienceAnalysis returns the neutral result used when the
// stage is degraded.
func DefaultExperienceAnalysis() *ExperienceAnalysis {
	return &ExperienceAnalysis{
		Score:        10.0,
		MaxScore:     MaxExperienceScore,
		Feedback:     []string{"Experience analysis not available"},
		Strengths:    []string{},
		Improvements: []string{},
	}
}
