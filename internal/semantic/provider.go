// Package semantic supplies embedding vectors and distance math for
// clustering runs that want meaning-based grouping on top of SERP overlap.
package semantic

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrMissingCredential is returned when an embedding provider is selected
	// but no API key is configured.
	ErrMissingCredential = errors.New("semantic provider api key not configured")
	// ErrAuth is returned when the provider rejects the configured credentials.
	ErrAuth = errors.New("semantic provider rejected credentials")
	// ErrRateLimited is returned when the provider throttles the request.
	ErrRateLimited = errors.New("semantic provider rate limited")
	// ErrUpstream is returned for any other provider failure.
	ErrUpstream = errors.New("semantic provider request failed")
)

// Provider produces embedding vectors for keyword texts. Embed returns one
// vector per input in the same order, in a single upstream call. A provider
// with Enabled() == false never reaches the network and yields no vectors.
type Provider interface {
	Name() string
	Enabled() bool
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Distance(a, b []float32) float64
}

// CosineDistance returns 1 minus the cosine similarity of a and b, so 0 means
// identical direction and values near 1 mean unrelated. Vectors that are
// empty, mismatched in length, or zero magnitude get the unrelated distance
// of 1 rather than an error.
func CosineDistance(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 1.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1.0
	}
	return 1.0 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
