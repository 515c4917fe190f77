// Package editor provides the manual correction operations applied to built
// clusters. Both operations return new cluster values and leave their inputs
// untouched, so a cluster still referenced elsewhere keeps its old members
// and flags.
package editor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/model"
)

// ErrNoClusters is returned by Merge when it receives nothing to merge. It
// wraps model.ErrInvalidParams so callers can classify it with the other
// input rejections.
var ErrNoClusters = fmt.Errorf("%w: merge needs at least one cluster", model.ErrInvalidParams)

// Merge concatenates the members of all clusters, in input order, into one
// new cluster. The first member in concatenated order becomes the
// representative; search volume is not consulted here, unlike the automatic
// engine's selection rule. An empty newName falls back to the first member's
// text.
func Merge(clusters []model.Cluster, newName string) (model.Cluster, error) {
	if len(clusters) == 0 {
		return model.Cluster{}, ErrNoClusters
	}

	var members []model.ClusterMember
	for _, c := range clusters {
		members = append(members, c.Members...)
	}
	members = firstAsRepresentative(members)

	name := newName
	if name == "" && len(members) > 0 {
		name = members[0].Text
	}

	return model.Cluster{
		ID:      uuid.NewString(),
		Name:    name,
		Members: members,
	}, nil
}

// Split partitions the cluster's members by exact text match against
// selectedTexts: matching members move to a new cluster, the rest stay. The
// remaining cluster keeps its ID and name; the moved cluster gets a fresh ID
// and newName, falling back to its first member's text. Each non-empty side
// gets its first member as representative; a side left with no members has
// none.
func Split(c model.Cluster, selectedTexts []string, newName string) (remaining, moved model.Cluster) {
	selected := make(map[string]bool, len(selectedTexts))
	for _, t := range selectedTexts {
		selected[t] = true
	}

	var keep, move []model.ClusterMember
	for _, m := range c.Members {
		if selected[m.Text] {
			move = append(move, m)
		} else {
			keep = append(keep, m)
		}
	}

	remaining = model.Cluster{
		ID:      c.ID,
		Name:    c.Name,
		Members: firstAsRepresentative(keep),
	}

	movedName := newName
	if movedName == "" && len(move) > 0 {
		movedName = move[0].Text
	}
	moved = model.Cluster{
		ID:      uuid.NewString(),
		Name:    movedName,
		Members: firstAsRepresentative(move),
	}
	return remaining, moved
}

// firstAsRepresentative copies members with every representative flag
// cleared, then flags the first member when one exists.
func firstAsRepresentative(members []model.ClusterMember) []model.ClusterMember {
	if len(members) == 0 {
		return nil
	}
	out := make([]model.ClusterMember, len(members))
	copy(out, members)
	for i := range out {
		out[i].IsRepresentative = i == 0
	}
	return out
}
