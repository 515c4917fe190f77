// Package cluster turns pairwise similarity matrices into disjoint keyword
// groups via a union-find merge scan.
package cluster

import (
	"github.com/google/uuid"

	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/model"
)

// Build partitions keywords into clusters. A pair (i, j) merges when its
// overlap score reaches params.OverlapThreshold; with semantic grouping on,
// a semantic distance above params.DistanceThreshold vetoes the merge even
// when overlap passes. Merges are transitive through the union-find
// structure. Groups below params.MinClusterSize are returned whole in the
// unclustered list instead of becoming clusters.
//
// Pass a nil semantic matrix when the run has semantic grouping off. Both
// matrices must be len(keywords) square; groupings and representative
// choices are deterministic for a given input order, only cluster IDs are
// minted fresh.
func Build(keywords []model.Keyword, overlap [][]int, semantic [][]float64, params model.ClusteringParams) ([]model.Cluster, []model.Keyword) {
	n := len(keywords)
	if n == 0 {
		return nil, nil
	}

	useSemantic := params.SemanticEnabled() && semantic != nil

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if overlap[i][j] < params.OverlapThreshold {
				continue
			}
			if useSemantic && semantic[i][j] > params.DistanceThreshold {
				continue
			}
			uf.union(i, j)
		}
	}

	// Group indices by root, ordering groups by the first index that lands
	// in each so output order follows input order.
	groupOf := make(map[int]int, n)
	var groups [][]int
	for i := 0; i < n; i++ {
		root := uf.find(i)
		gi, ok := groupOf[root]
		if !ok {
			gi = len(groups)
			groupOf[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}

	var clusters []model.Cluster
	var unclustered []model.Keyword
	for _, g := range groups {
		if len(g) < params.MinClusterSize {
			for _, idx := range g {
				unclustered = append(unclustered, keywords[idx])
			}
			continue
		}
		clusters = append(clusters, buildCluster(keywords, g))
	}
	return clusters, unclustered
}

// buildCluster assembles one cluster from the group's keyword indices. The
// representative is the member with the highest search volume; indices come
// in ascending input order, so on ties the earliest input keyword wins.
func buildCluster(keywords []model.Keyword, indices []int) model.Cluster {
	rep := indices[0]
	for _, idx := range indices[1:] {
		if keywords[idx].SearchVolume > keywords[rep].SearchVolume {
			rep = idx
		}
	}

	members := make([]model.ClusterMember, len(indices))
	for i, idx := range indices {
		k := keywords[idx]
		members[i] = model.ClusterMember{
			KeywordID:        k.ID,
			Text:             k.Text,
			SearchVolume:     k.SearchVolume,
			Difficulty:       k.Difficulty,
			IsRepresentative: idx == rep,
			Results:          k.Results,
		}
	}

	return model.Cluster{
		ID:      uuid.NewString(),
		Name:    keywords[rep].Text,
		Members: members,
	}
}
