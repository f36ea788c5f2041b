// Package embedding provides text embedding behind a provider interface,
// plus the cosine similarity used by skill validation and JD comparison.
package embedding

import (
	"context"
	"math"
)

// Embedder turns text into a dense vector. Implementations must be safe
// for concurrent use and deterministic for identical inputs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Cosine returns the cosine similarity of two vectors, clamped to [0, 1].
// Mismatched or empty vectors score 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// Similarity embeds both texts and returns their cosine similarity.
func Similarity(ctx context.Context, e Embedder, a, b string) (float64, error) {
	va, err := e.Embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := e.Embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return Cosine(va, vb), nil
}
