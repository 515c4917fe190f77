// Package serp scores how strongly two keywords share search intent by
// comparing the organic results returned for each of them.
package serp

import "strings"

// TopResults caps how many organic results per keyword count toward overlap.
const TopResults = 10

// NormalizeURL canonicalizes a SERP URL for comparison. The scheme and a
// leading www. are dropped, everything is lowercased, and a single trailing
// slash is removed, so https://www.Example.com/page/ and
// http://example.com/page count as the same page.
func NormalizeURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimSuffix(u, "/")
	return u
}

// OverlapScore counts the distinct normalized URLs the two result lists
// share, looking at the first TopResults entries of each. Scores land in
// [0, TopResults]; a keyword without SERP data scores 0 against everything.
func OverlapScore(urlsA, urlsB []string) int {
	seen := urlSet(urlsA)
	if len(seen) == 0 {
		return 0
	}

	matched := 0
	counted := make(map[string]bool, TopResults)
	for _, raw := range topResults(urlsB) {
		u := NormalizeURL(raw)
		if u == "" || counted[u] {
			continue
		}
		counted[u] = true
		if seen[u] {
			matched++
		}
	}
	return matched
}

func urlSet(urls []string) map[string]bool {
	top := topResults(urls)
	set := make(map[string]bool, len(top))
	for _, raw := range top {
		if u := NormalizeURL(raw); u != "" {
			set[u] = true
		}
	}
	return set
}

func topResults(urls []string) []string {
	if len(urls) > TopResults {
		return urls[:TopResults]
	}
	return urls
}
