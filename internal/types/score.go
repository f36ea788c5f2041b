package types

// Maximum points per score component.
const (
	MaxFormattingScore      = 20.0
	MaxKeywordsScore        = 25.0
	MaxContentScore         = 25.0
	MaxSkillValidationScore = 15.0
	MaxATSScore             = 15.0
	MaxOverallScore         = 100.0
)

// Component names used in feedback maps and status tracking.
const (
	ComponentFormatting      = "formatting"
	ComponentKeywords        = "keywords"
	ComponentContent         = "content"
	ComponentSkillValidation = "skill_validation"
	ComponentATS             = "ats_compatibility"
)

// ComponentScores holds the five bounded score components.
type ComponentScores struct {
	Formatting       float64 `json:"formatting"`
	Keywords         float64 `json:"keywords"`
	Content          float64 `json:"content"`
	SkillValidation  float64 `json:"skill_validation"`
	ATSCompatibility float64 `json:"ats_compatibility"`
}

// Sum returns the base score before bonuses.
func (c ComponentScores) Sum() float64 {
	return c.Formatting + c.Keywords + c.Content + c.SkillValidation + c.ATSCompatibility
}

// Get returns a component's value by name.
func (c ComponentScores) Get(name string) float64 {
	switch name {
	case ComponentFormatting:
		return c.Formatting
	case ComponentKeywords:
		return c.Keywords
	case ComponentContent:
		return c.Content
	case ComponentSkillValidation:
		return c.SkillValidation
	case ComponentATS:
		return c.ATSCompatibility
	}
	return 0
}

// Bonus is a named additive score adjustment.
type Bonus struct {
	Reason string  `json:"reason"`
	Points float64 `json:"points"`
}

// ScoreBreakdown is the output of the scoring stage. Penalties are
// informational: their magnitudes are already reflected inside the
// components and are never subtracted from the overall score again.
type ScoreBreakdown struct {
	Overall           float64            `json:"overall"`
	Components        ComponentScores    `json:"components"`
	Bonuses           []Bonus            `json:"bonuses"`
	Penalties         map[string]float64 `json:"penalties"`
	Interpretation    string             `json:"interpretation"`
	ComponentFeedback map[string]string  `json:"component_feedback"`
	Strengths         []string           `json:"strengths"`
	CriticalIssues    []string           `json:"critical_issues"`
	Improvements      []string           `json:"improvements"`
}

// BonusPoints returns the total additive bonus.
func (s *ScoreBreakdown) BonusPoints() float64 {
	total := 0.0
	for _, b := range s.Bonuses {
		total += b.Points
	}
	return total
}
