package model

import (
	"errors"
	"fmt"
)

// ErrInvalidParams marks a clustering request rejected before any work ran.
var ErrInvalidParams = errors.New("invalid clustering params")

// Semantic provider modes accepted by ClusteringParams.
const (
	SemanticDisabled  = "disabled"
	SemanticEmbedding = "embedding"
)

// ClusteringParams tunes one clustering run. OverlapThreshold is the minimum
// shared-URL score (0..10) a keyword pair must reach before it can merge.
// DistanceThreshold (0..1) only applies when SemanticProvider is "embedding":
// a pair that clears the overlap gate still merges only if its cosine
// distance stays at or below it. Groups smaller than MinClusterSize are
// reported as unclustered instead of forming a cluster.
type ClusteringParams struct {
	OverlapThreshold  int     `json:"overlap_threshold"`
	DistanceThreshold float64 `json:"distance_threshold"`
	MinClusterSize    int     `json:"min_cluster_size"`
	SemanticProvider  string  `json:"semantic_provider"`
}

// Validate checks every field against its documented range. All failures wrap
// ErrInvalidParams so callers can classify without string matching.
func (p ClusteringParams) Validate() error {
	if p.OverlapThreshold < 0 || p.OverlapThreshold > 10 {
		return fmt.Errorf("%w: overlap_threshold %d outside [0, 10]", ErrInvalidParams, p.OverlapThreshold)
	}
	if p.DistanceThreshold < 0 || p.DistanceThreshold > 1 {
		return fmt.Errorf("%w: distance_threshold %.3f outside [0, 1]", ErrInvalidParams, p.DistanceThreshold)
	}
	if p.MinClusterSize < 1 {
		return fmt.Errorf("%w: min_cluster_size %d must be at least 1", ErrInvalidParams, p.MinClusterSize)
	}
	switch p.SemanticProvider {
	case SemanticDisabled, SemanticEmbedding:
	default:
		return fmt.Errorf("%w: semantic_provider %q must be %q or %q",
			ErrInvalidParams, p.SemanticProvider, SemanticDisabled, SemanticEmbedding)
	}
	return nil
}

// SemanticEnabled reports whether the run wants embedding distances.
func (p ClusteringParams) SemanticEnabled() bool {
	return p.SemanticProvider == SemanticEmbedding
}
