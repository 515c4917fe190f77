// Package matrix builds the pairwise score matrices the cluster engine
// consumes. Both builders compute the upper triangle once and mirror it, so
// the output is symmetric by construction.
package matrix

import (
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/model"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/serp"
)

// Overlap returns the NxN SERP overlap matrix for the keywords. Cell [i][j]
// holds the shared-URL score of keywords i and j. The diagonal is pinned to
// serp.TopResults: a keyword trivially shares every result with itself, even
// when it has no SERP data at all.
func Overlap(keywords []model.Keyword) [][]int {
	n := len(keywords)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		m[i][i] = serp.TopResults
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := serp.OverlapScore(keywords[i].ResultURLs(), keywords[j].ResultURLs())
			m[i][j] = score
			m[j][i] = score
		}
	}
	return m
}

// Semantic returns the NxN distance matrix for the vectors under dist, with a
// zero diagonal. vectors and the keyword list share indexing, so cell [i][j]
// is the semantic distance between keywords i and j.
func Semantic(vectors [][]float32, dist func(a, b []float32) float64) [][]float64 {
	n := len(vectors)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist(vectors[i], vectors[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}
