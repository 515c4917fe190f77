package model

// SERPResult is a single organic result captured for a keyword's query.
type SERPResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Keyword is one entry of a caller-supplied keyword list. Results holds at
// most the top-10 organic URLs for the keyword; missing SERP data is not an
// error, it simply scores 0 overlap against everything else. A zero
// SearchVolume or Difficulty means the metric was absent upstream.
type Keyword struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	Results      []SERPResult `json:"results,omitempty"`
	SearchVolume int          `json:"search_volume,omitempty"`
	Difficulty   float64      `json:"difficulty,omitempty"`
}

// ResultURLs returns the keyword's SERP URLs in rank order.
func (k Keyword) ResultURLs() []string {
	if len(k.Results) == 0 {
		return nil
	}
	urls := make([]string, len(k.Results))
	for i, r := range k.Results {
		urls[i] = r.URL
	}
	return urls
}
