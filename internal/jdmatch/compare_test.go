package jdmatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/nlp"
)

func newComparator() *Comparator {
	return NewComparator(
		embedding.NewHashingEmbedder(embedding.DefaultHashingDimensions),
		nlp.NewHeuristicAnnotator(),
	)
}

func TestCompare_MatchedAndMissingKeywords(t *testing.T) {
	resumeText := "Senior engineer building Python services with Docker"
	jdText := "Looking for a Python engineer. Docker and Terraform required."

	result, err := newComparator().Compare(context.Background(), resumeText, jdText,
		[]string{"python", "docker", "services"}, []string{"Python", "Docker"})
	require.NoError(t, err)

	assert.Contains(t, result.MatchedKeywords, "python")
	assert.Contains(t, result.MatchedKeywords, "docker")
	assert.Contains(t, result.MissingKeywords, "terraform")
	assert.NotContains(t, result.MissingKeywords, "python")
}

func TestCompare_MatchedKeywordsSortedLowercase(t *testing.T) {
	result, err := newComparator().Compare(context.Background(),
		"Python and Docker work", "Docker plus Python role",
		[]string{"Python", "Docker"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"docker", "python"}, result.MatchedKeywords)
}

func TestCompare_MissingKeywordsKeepJDOrder(t *testing.T) {
	result, err := newComparator().Compare(context.Background(),
		"Python services resume", "Python\nAWS\nDocker",
		[]string{"python"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, result.MatchedKeywords)
	assert.Equal(t, []string{"aws", "docker"}, result.MissingKeywords)
	assert.InDelta(t, 1.0/3.0, result.KeywordOverlap, 1e-9)
}

func TestCompare_MatchPercentageBlendsOverlapAndSemantic(t *testing.T) {
	result, err := newComparator().Compare(context.Background(), "Python", "Python",
		[]string{"python"}, nil)
	require.NoError(t, err)

	// Identical texts: full overlap and semantic similarity 1.0.
	assert.InDelta(t, 1.0, result.KeywordOverlap, 1e-9)
	assert.InDelta(t, 1.0, result.SemanticSimilarity, 1e-9)
	assert.InDelta(t, 100.0, result.MatchPercentage, 1e-6)
}

func TestCompare_NoJDKeywordsFallsBackToSemantic(t *testing.T) {
	result, err := newComparator().Compare(context.Background(),
		"Python engineer resume", "the of and", []string{"python"}, nil)
	require.NoError(t, err)

	assert.Empty(t, result.MatchedKeywords)
	assert.Equal(t, 0.0, result.KeywordOverlap)
	assert.InDelta(t, result.SemanticSimilarity*40, result.MatchPercentage, 1e-6)
}

func TestCompare_SkillsGapExcludesResumeSkills(t *testing.T) {
	result, err := newComparator().Compare(context.Background(),
		"Resume body", "Must know Terraform and Python",
		nil, []string{"Python"})
	require.NoError(t, err)

	assert.Contains(t, result.SkillsGap, "terraform")
	assert.NotContains(t, result.SkillsGap, "python")
}

func TestCompare_SkillsGapMutualSubstringExclusion(t *testing.T) {
	result, err := newComparator().Compare(context.Background(),
		"Resume body", "Experience with Python scripting",
		nil, []string{"Python scripting tools"})
	require.NoError(t, err)

	assert.NotContains(t, result.SkillsGap, "python")
}

func TestCompare_AnnotatorErrorPropagates(t *testing.T) {
	c := NewComparator(embedding.NewHashingEmbedder(16), failingAnnotator{})

	_, err := c.Compare(context.Background(), "resume", "jd", nil, nil)
	assert.Error(t, err)
}

type failingAnnotator struct{}

func (failingAnnotator) Annotate(context.Context, string) (*nlp.Annotation, error) {
	return nil, assert.AnError
}
