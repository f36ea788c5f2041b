package types

// SkillEvidence records where a single skill was substantiated.
type SkillEvidence struct {
	Skill      string   `json:"skill"`
	Projects   []string `json:"projects"`
	Similarity float64  `json:"similarity"`
}

// SkillValidation is the output of the evidence-based skill validation stage.
type SkillValidation struct {
	ValidatedSkills      []SkillEvidence     `json:"validated_skills"`
	UnvalidatedSkills    []string            `json:"unvalidated_skills"`
	ValidationPercentage float64             `json:"validation_percentage"`
	SkillProjectMapping  map[string][]string `json:"skill_project_mapping"`
	ValidationScore      float64             `json:"validation_score"`
}

// EmptySkillValidation returns the zero-valued result used when the resume
// has no extracted skills or the stage is degraded.
func EmptySkillValidation() *SkillValidation {
	return &SkillValidation{
		ValidatedSkills:     []SkillEvidence{},
		UnvalidatedSkills:   []string{},
		SkillProjectMapping: map[string][]string{},
	}
}
