package types

// JDComparison is the output of the job description comparison stage.
type JDComparison struct {
	MatchPercentage    float64  `json:"match_percentage"`
	KeywordOverlap     float64  `json:"keyword_overlap"`
	MatchedKeywords    []string `json:"matched_keywords"`
	MissingKeywords    []string `json:"missing_keywords"`
	SkillsGap          []string `json:"skills_gap"`
	SemanticSimilarity float64  `json:"semantic_similarity"`
}

// EmptyJDComparison returns the zero-valued result used when no job
// description was supplied or the stage is degraded.
func EmptyJDComparison() *JDComparison {
	return &JDComparison{
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		SkillsGap:       []string{},
	}
}
