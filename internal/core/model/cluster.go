package model

// ClusterMember is a keyword as it appears inside a cluster. Exactly one
// member per cluster carries IsRepresentative.
type ClusterMember struct {
	KeywordID        string       `json:"keyword_id"`
	Text             string       `json:"text"`
	SearchVolume     int          `json:"search_volume,omitempty"`
	Difficulty       float64      `json:"difficulty,omitempty"`
	IsRepresentative bool         `json:"is_representative"`
	Results          []SERPResult `json:"results,omitempty"`
}

// Cluster is a named group of related keywords.
type Cluster struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Members []ClusterMember `json:"members"`
}

// Representative returns the member flagged as the cluster's representative,
// or false when the cluster is empty.
func (c Cluster) Representative() (ClusterMember, bool) {
	for _, m := range c.Members {
		if m.IsRepresentative {
			return m, true
		}
	}
	return ClusterMember{}, false
}

// TotalVolume sums the search volume across all members.
func (c Cluster) TotalVolume() int {
	total := 0
	for _, m := range c.Members {
		total += m.SearchVolume
	}
	return total
}

// ClusteringResult is the full outcome of one clustering run. Unclustered
// holds the keywords whose groups fell below the minimum cluster size; every
// input keyword appears exactly once, either in a cluster or here.
type ClusteringResult struct {
	Clusters    []Cluster        `json:"clusters"`
	Params      ClusteringParams `json:"params"`
	Unclustered []Keyword        `json:"unclustered"`
}
