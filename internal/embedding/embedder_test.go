package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float64{0.5, 0.3, 0.2}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}))
}

func TestCosine_NegativeClampedToZero(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 0}, []float64{-1, 0}))
}

func TestCosine_MismatchedOrEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestHashingEmbedder_Deterministic(t *testing.T) {
	e := NewHashingEmbedder(DefaultHashingDimensions)

	a, err := e.Embed(context.Background(), "python microservices on kubernetes")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "python microservices on kubernetes")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, DefaultHashingDimensions)
}

func TestHashingEmbedder_Normalized(t *testing.T) {
	e := NewHashingEmbedder(64)

	vec, err := e.Embed(context.Background(), "terraform infrastructure automation")
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestHashingEmbedder_SharedVocabularyScoresHigher(t *testing.T) {
	e := NewHashingEmbedder(DefaultHashingDimensions)
	ctx := context.Background()

	base, err := e.Embed(ctx, "python backend development")
	require.NoError(t, err)
	similar, err := e.Embed(ctx, "python backend services")
	require.NoError(t, err)
	unrelated, err := e.Embed(ctx, "watercolor landscape painting")
	require.NoError(t, err)

	assert.Greater(t, Cosine(base, similar), Cosine(base, unrelated))
}

func TestHashingEmbedder_EmptyText(t *testing.T) {
	e := NewHashingEmbedder(32)

	vec, err := e.Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, vec, 32)
	assert.Equal(t, 0.0, Cosine(vec, vec))
}

func TestNewHashingEmbedder_FallbackDimensions(t *testing.T) {
	e := NewHashingEmbedder(0)

	vec, err := e.Embed(context.Background(), "go")
	require.NoError(t, err)
	assert.Len(t, vec, DefaultHashingDimensions)
}

func TestSimilarity_UsesEmbedder(t *testing.T) {
	e := NewHashingEmbedder(DefaultHashingDimensions)

	sim, err := Similarity(context.Background(), e, "kafka streaming", "kafka streaming")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}
