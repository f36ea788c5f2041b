package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// DefaultHashingDimensions is the vector size for the local embedder.
const DefaultHashingDimensions = 256

var wordRe = regexp.MustCompile(`[a-z0-9][a-z0-9+#.-]*`)

// HashingEmbedder is a local, deterministic embedder using feature hashing
// over token counts. Texts sharing vocabulary get high cosine similarity,
// which is enough for evidence matching without a network round trip.
type HashingEmbedder struct {
	dims int
}

// NewHashingEmbedder creates a local embedder with the given dimensions.
// Non-positive dims fall back to the default.
func NewHashingEmbedder(dims int) *HashingEmbedder {
	if dims <= 0 {
		dims = DefaultHashingDimensions
	}
	return &HashingEmbedder{dims: dims}
}

// Embed hashes each token into a signed bucket and L2-normalizes the result.
func (h *HashingEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, h.dims)

	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		hash := fnv.New64a()
		_, _ = hash.Write([]byte(word))
		sum := hash.Sum64()

		bucket := int(sum % uint64(h.dims)) //nolint:gosec // dims is small and positive
		sign := 1.0
		if sum&(1<<63) != 0 {
			sign = -1.0
		}
		vec[bucket] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}
