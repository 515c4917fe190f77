// Package core wires the clustering pipeline together: validation, matrix
// construction, the optional embedding call, and the union-find engine.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/cluster"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/matrix"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/model"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/semantic"
)

// Clusterer runs clustering end to end. Provider supplies embeddings when a
// run asks for semantic grouping; a disabled provider is fine as long as no
// run asks. MaxKeywords caps input size (0 means uncapped) and EmbedTimeout
// bounds the one outbound embedding call (0 falls back to 30s).
type Clusterer struct {
	Provider     semantic.Provider
	EmbedTimeout time.Duration
	MaxKeywords  int
}

func NewClusterer(provider semantic.Provider, embedTimeout time.Duration, maxKeywords int) *Clusterer {
	return &Clusterer{
		Provider:     provider,
		EmbedTimeout: embedTimeout,
		MaxKeywords:  maxKeywords,
	}
}

// Cluster validates the input, builds the pairwise matrices, and partitions
// the keywords. When semantic grouping is on, all keyword texts go out in a
// single embedding call; any failure there aborts the whole run rather than
// degrading to overlap-only results.
func (c *Clusterer) Cluster(ctx context.Context, keywords []model.Keyword, params model.ClusteringParams) (*model.ClusteringResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := c.validateKeywords(keywords); err != nil {
		return nil, err
	}

	log.Info().
		Int("keywords", len(keywords)).
		Str("semantic_provider", params.SemanticProvider).
		Msg("clustering run started")

	overlap := matrix.Overlap(keywords)

	var semanticDist [][]float64
	if params.SemanticEnabled() {
		vectors, err := c.embedKeywords(ctx, keywords)
		if err != nil {
			return nil, err
		}
		semanticDist = matrix.Semantic(vectors, c.Provider.Distance)
	}

	clusters, unclustered := cluster.Build(keywords, overlap, semanticDist, params)

	log.Info().
		Int("clusters", len(clusters)).
		Int("unclustered", len(unclustered)).
		Msg("clustering run finished")

	return &model.ClusteringResult{
		Clusters:    clusters,
		Params:      params,
		Unclustered: unclustered,
	}, nil
}

func (c *Clusterer) validateKeywords(keywords []model.Keyword) error {
	if c.MaxKeywords > 0 && len(keywords) > c.MaxKeywords {
		return fmt.Errorf("%w: %d keywords exceeds the limit of %d", model.ErrInvalidParams, len(keywords), c.MaxKeywords)
	}

	seen := make(map[string]bool, len(keywords))
	for i, k := range keywords {
		if k.ID == "" {
			return fmt.Errorf("%w: keyword at index %d has no id", model.ErrInvalidParams, i)
		}
		if seen[k.ID] {
			return fmt.Errorf("%w: duplicate keyword id %q", model.ErrInvalidParams, k.ID)
		}
		seen[k.ID] = true
	}
	return nil
}

func (c *Clusterer) embedKeywords(ctx context.Context, keywords []model.Keyword) ([][]float32, error) {
	if c.Provider == nil || !c.Provider.Enabled() {
		return nil, fmt.Errorf("%w: semantic clustering requested but the server has no embedding provider", semantic.ErrMissingCredential)
	}

	texts := make([]string, len(keywords))
	for i, k := range keywords {
		texts[i] = k.Text
	}

	timeout := c.EmbedTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	embedCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	vectors, err := c.Provider.Embed(embedCtx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(keywords) {
		return nil, fmt.Errorf("%w: got %d vectors for %d keywords", semantic.ErrUpstream, len(vectors), len(keywords))
	}

	log.Debug().
		Str("provider", c.Provider.Name()).
		Int("vectors", len(vectors)).
		Dur("elapsed", time.Since(start)).
		Msg("embedded keyword batch")

	return vectors, nil
}
