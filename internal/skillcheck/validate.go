// Package skillcheck validates claimed skills against project and work
// experience evidence using exact matching and embedding similarity.
package skillcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/types"
)

// DefaultSimilarityThreshold is the minimum cosine similarity for a
// project or experience text to count as evidence.
const DefaultSimilarityThreshold = 0.6

// experienceEvidenceLabel names the experience section in evidence lists.
const experienceEvidenceLabel = "Experience Section"

// Validator checks skills against evidence texts.
type Validator struct {
	embedder  embedding.Embedder
	threshold float64
}

// NewValidator creates a validator. A non-positive threshold falls back
// to the default.
func NewValidator(embedder embedding.Embedder, threshold float64) *Validator {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Validator{embedder: embedder, threshold: threshold}
}

// Validate scores each skill against project texts and the experience
// section. An exact case-insensitive occurrence counts as similarity 1.0;
// otherwise embedding similarity at or above the threshold counts as
// evidence. A skill is validated iff it has at least one piece of
// evidence. An empty skill list returns the zero result without touching
// the embedder.
func (v *Validator) Validate(ctx context.Context, skills []string, projects []types.ProjectEntry, experienceText string) (*types.SkillValidation, error) {
	result := types.EmptySkillValidation()
	if len(skills) == 0 {
		return result, nil
	}

	vectors := map[string][]float64{}
	embed := func(text string) ([]float64, error) {
		if vec, ok := vectors[text]; ok {
			return vec, nil
		}
		vec, err := v.embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[text] = vec
		return vec, nil
	}

	projectTexts := make([]string, len(projects))
	for i, p := range projects {
		projectTexts[i] = p.Title + " " + p.Description
	}
	hasExperience := strings.TrimSpace(experienceText) != ""

	for _, skill := range skills {
		evidence := []string{}
		maxSim := 0.0
		skillLower := strings.ToLower(skill)

		for i, text := range projectTexts {
			if strings.Contains(strings.ToLower(text), skillLower) {
				evidence = append(evidence, projects[i].Title)
				maxSim = 1.0
				continue
			}
			sim, err := v.similarity(embed, skill, text)
			if err != nil {
				return nil, fmt.Errorf("failed to score skill %q: %w", skill, err)
			}
			if sim > maxSim {
				maxSim = sim
			}
			if sim >= v.threshold {
				evidence = append(evidence, projects[i].Title)
			}
		}

		if hasExperience {
			if strings.Contains(strings.ToLower(experienceText), skillLower) {
				evidence = append(evidence, experienceEvidenceLabel)
				maxSim = 1.0
			} else {
				sim, err := v.similarity(embed, skill, experienceText)
				if err != nil {
					return nil, fmt.Errorf("failed to score skill %q: %w", skill, err)
				}
				if sim > maxSim {
					maxSim = sim
				}
				if sim >= v.threshold {
					evidence = append(evidence, experienceEvidenceLabel)
				}
			}
		}

		if len(evidence) > 0 {
			result.ValidatedSkills = append(result.ValidatedSkills, types.SkillEvidence{
				Skill:      skill,
				Projects:   evidence,
				Similarity: maxSim,
			})
			result.SkillProjectMapping[skill] = evidence
		} else {
			result.UnvalidatedSkills = append(result.UnvalidatedSkills, skill)
		}
	}

	result.ValidationPercentage = float64(len(result.ValidatedSkills)) / float64(len(skills))
	result.ValidationScore = result.ValidationPercentage * types.MaxSkillValidationScore
	return result, nil
}

func (v *Validator) similarity(embed func(string) ([]float64, error), skill, text string) (float64, error) {
	skillVec, err := embed(skill)
	if err != nil {
		return 0, err
	}
	textVec, err := embed(text)
	if err != nil {
		return 0, err
	}
	return embedding.Cosine(skillVec, textVec), nil
}
