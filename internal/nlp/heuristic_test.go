package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entityTexts(entities []Entity) []string {
	texts := make([]string, len(entities))
	for i, e := range entities {
		texts[i] = e.Text
	}
	return texts
}

func TestHeuristicAnnotator_TechEntities(t *testing.T) {
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), "Built services in Python and Go, deployed on AWS with Docker")
	require.NoError(t, err)

	langs := entityTexts(ann.EntitiesByLabel(LabelLanguage))
	assert.Contains(t, langs, "Python")
	assert.Contains(t, langs, "Go")

	assert.Contains(t, entityTexts(ann.EntitiesByLabel(LabelOrg)), "AWS")
	assert.Contains(t, entityTexts(ann.EntitiesByLabel(LabelProduct)), "Docker")
}

func TestHeuristicAnnotator_PlaceEntities(t *testing.T) {
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), "Based in Seattle, WA since 2020")
	require.NoError(t, err)

	places := entityTexts(ann.EntitiesByLabel(LabelGPE))
	assert.Contains(t, places, "Seattle")
	assert.Contains(t, places, "WA")
}

func TestHeuristicAnnotator_MultiWordPlace(t *testing.T) {
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), "Relocated from San Francisco last year")
	require.NoError(t, err)

	assert.Contains(t, entityTexts(ann.EntitiesByLabel(LabelGPE)), "San Francisco")
}

func TestHeuristicAnnotator_EntityOffsets(t *testing.T) {
	text := "Expert in Python"
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), text)
	require.NoError(t, err)

	entities := ann.EntitiesByLabel(LabelLanguage)
	require.Len(t, entities, 1)
	assert.Equal(t, "Python", text[entities[0].Start:entities[0].Start+len("Python")])
}

func TestHeuristicAnnotator_TokensTagged(t *testing.T) {
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), "Built scalable systems")
	require.NoError(t, err)

	require.Len(t, ann.Tokens, 3)
	assert.Equal(t, POSVerb, ann.Tokens[0].POS)
	assert.False(t, ann.Tokens[0].Stop)
}

func TestHeuristicAnnotator_NounChunks(t *testing.T) {
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), "modern database systems for the analytics team")
	require.NoError(t, err)

	require.NotEmpty(t, ann.NounChunks)
	assert.Equal(t, "modern database systems", ann.NounChunks[0].Text)
}

func TestHeuristicAnnotator_ChunksBreakAtLines(t *testing.T) {
	ann, err := NewHeuristicAnnotator().Annotate(context.Background(), "backend services\nfrontend apps")
	require.NoError(t, err)

	var texts []string
	for _, c := range ann.NounChunks {
		texts = append(texts, c.Text)
	}
	assert.Contains(t, texts, "backend services")
	assert.Contains(t, texts, "frontend apps")
}

func TestHeuristicAnnotator_Deterministic(t *testing.T) {
	text := "Developed Python microservices in Austin, TX"
	a := NewHeuristicAnnotator()

	first, err := a.Annotate(context.Background(), text)
	require.NoError(t, err)
	second, err := a.Annotate(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIsLikelyVerb(t *testing.T) {
	assert.True(t, IsLikelyVerb("built"))
	assert.True(t, IsLikelyVerb("Led"))
	assert.True(t, IsLikelyVerb("managed"))
	assert.True(t, IsLikelyVerb("developing"))

	assert.False(t, IsLikelyVerb("red"))
	assert.False(t, IsLikelyVerb("sing"))
	assert.False(t, IsLikelyVerb("database"))
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("The"))
	assert.False(t, IsStopWord("python"))
}
