//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/config"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/editor"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/model"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/semantic"
)

func keywordFixture() []model.Keyword {
	shoe := func(id, text string, volume int, extra string) model.Keyword {
		k := model.Keyword{
			ID:           id,
			Text:         text,
			SearchVolume: volume,
			Results: []model.SERPResult{
				{URL: "https://runnersworld.example.com/best-shoes"},
				{URL: "https://www.shoereview.example.org/running/"},
				{URL: "https://fit.example.net/guides/running-shoes"},
			},
		}
		if extra != "" {
			k.Results = append(k.Results, model.SERPResult{URL: extra})
		}
		return k
	}

	return []model.Keyword{
		shoe("k1", "running shoes", 5400, "https://a.example.com/1"),
		shoe("k2", "best running shoes", 2100, "https://a.example.com/2"),
		shoe("k3", "running shoes for women", 1800, "https://a.example.com/3"),
		{
			ID:           "k4",
			Text:         "standing desk",
			SearchVolume: 900,
			Results: []model.SERPResult{
				{URL: "https://office.example.com/desks"},
				{URL: "https://ergonomics.example.org/standing"},
			},
		},
	}
}

// TestOverlapOnlyFlow runs the pipeline end to end without any external
// dependency, then pushes the output through both editor operations.
func TestOverlapOnlyFlow(t *testing.T) {
	ctx := context.Background()
	c := core.NewClusterer(semantic.NewDisabledProvider(), 0, 0)

	params := model.ClusteringParams{
		OverlapThreshold: 3,
		MinClusterSize:   2,
		SemanticProvider: model.SemanticDisabled,
	}

	result, err := c.Cluster(ctx, keywordFixture(), params)
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1, "the three shoe keywords share their top results")
	assert.Len(t, result.Clusters[0].Members, 3)
	require.Len(t, result.Unclustered, 1)
	assert.Equal(t, "k4", result.Unclustered[0].ID)

	rep, ok := result.Clusters[0].Representative()
	require.True(t, ok)
	assert.Equal(t, "k1", rep.KeywordID, "highest volume keyword leads the cluster")
	assert.Equal(t, "running shoes", result.Clusters[0].Name)

	// Split the purchase-intent keyword out, then merge it back.
	remaining, moved := editor.Split(result.Clusters[0], []string{"best running shoes"}, "comparisons")
	assert.Len(t, remaining.Members, 2)
	require.Len(t, moved.Members, 1)
	assert.True(t, moved.Members[0].IsRepresentative)

	merged, err := editor.Merge([]model.Cluster{remaining, moved}, "running shoes")
	require.NoError(t, err)
	assert.Len(t, merged.Members, 3)

	rep, ok = merged.Representative()
	require.True(t, ok)
	assert.Equal(t, remaining.Members[0].KeywordID, rep.KeywordID, "merge promotes the first member, not the highest volume")
}

// TestEmbeddingFlow exercises a real embedding backend. It needs
// SEMANTIC_PROVIDER and SEMANTIC_API_KEY, from the environment or a root
// .env file.
func TestEmbeddingFlow(t *testing.T) {
	_ = godotenv.Load("../../.env")

	providerName := os.Getenv("SEMANTIC_PROVIDER")
	if providerName == "" || providerName == "disabled" {
		t.Skip("Skipping integration test: SEMANTIC_PROVIDER not set")
	}
	if os.Getenv("SEMANTIC_API_KEY") == "" {
		t.Skip("Skipping integration test: SEMANTIC_API_KEY not set")
	}

	cfg := config.SemanticConfig{
		Provider: providerName,
		Model:    os.Getenv("SEMANTIC_MODEL"),
		APIKey:   os.Getenv("SEMANTIC_API_KEY"),
		BaseURL:  os.Getenv("SEMANTIC_BASE_URL"),
	}

	ctx := context.Background()
	provider, err := semantic.New(ctx, cfg)
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	// Related texts should land closer than unrelated ones, whatever the
	// backing model.
	vectors, err := provider.Embed(ctx, []string{"running shoes", "trail running shoes", "standing desk"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)
	for i, v := range vectors {
		assert.NotEmpty(t, v, "vector %d is empty", i)
	}

	related := provider.Distance(vectors[0], vectors[1])
	unrelated := provider.Distance(vectors[0], vectors[2])
	assert.Less(t, related, unrelated)

	c := core.NewClusterer(provider, cfg.Timeout(), 0)
	params := model.ClusteringParams{
		OverlapThreshold:  3,
		DistanceThreshold: 0.5,
		MinClusterSize:    2,
		SemanticProvider:  model.SemanticEmbedding,
	}

	result, err := c.Cluster(ctx, keywordFixture(), params)
	require.NoError(t, err)

	// Exact groupings depend on the embedding model, so check the
	// structural invariants instead.
	seen := map[string]int{}
	for _, cl := range result.Clusters {
		assert.GreaterOrEqual(t, len(cl.Members), params.MinClusterSize)
		reps := 0
		for _, m := range cl.Members {
			seen[m.KeywordID]++
			if m.IsRepresentative {
				reps++
			}
		}
		assert.Equal(t, 1, reps, "cluster %s needs exactly one representative", cl.Name)
	}
	for _, k := range result.Unclustered {
		seen[k.ID]++
	}
	require.Len(t, seen, len(keywordFixture()))
	for id, n := range seen {
		assert.Equal(t, 1, n, "keyword %s appears %d times", id, n)
	}

	t.Logf("clusters: %d, unclustered: %d", len(result.Clusters), len(result.Unclustered))
}
