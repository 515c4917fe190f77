// Command smoketest drives a running server through the whole API surface:
// health, a clustering run, then a merge and a split. It exits non-zero on
// the first failure so it can gate a deploy script.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var baseURL = "http://localhost:8080"

func main() {
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}

	// Give a freshly started server a moment to bind.
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	fmt.Println("1. Health check...")
	if _, ok := sendRequest("GET", "/healthz", nil); !ok {
		fmt.Println("FAILED: health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: health check")

	fmt.Println("2. Clustering run...")
	clusterPayload := map[string]interface{}{
		"keywords": []map[string]interface{}{
			{
				"id": "k1", "text": "running shoes", "search_volume": 5400,
				"results": []map[string]string{
					{"url": "https://a.com/1"}, {"url": "https://a.com/2"},
					{"url": "https://a.com/3"}, {"url": "https://a.com/4"},
				},
			},
			{
				"id": "k2", "text": "best running shoes", "search_volume": 2100,
				"results": []map[string]string{
					{"url": "https://a.com/1"}, {"url": "https://a.com/2"},
					{"url": "https://a.com/3"}, {"url": "https://b.com/1"},
				},
			},
			{
				"id": "k3", "text": "standing desk", "search_volume": 900,
				"results": []map[string]string{
					{"url": "https://c.com/1"}, {"url": "https://c.com/2"},
				},
			},
		},
		"params": map[string]interface{}{
			"overlap_threshold": 3,
			"min_cluster_size":  2,
			"semantic_provider": "disabled",
		},
	}

	body, ok := sendRequest("POST", "/api/v1/cluster", clusterPayload)
	if !ok {
		fmt.Println("FAILED: clustering run")
		os.Exit(1)
	}

	var result struct {
		Clusters []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Members []struct {
				Text             string `json:"text"`
				IsRepresentative bool   `json:"is_representative"`
			} `json:"members"`
		} `json:"clusters"`
		Unclustered []interface{} `json:"unclustered"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("FAILED: could not decode clustering response: %v\n", err)
		os.Exit(1)
	}
	if len(result.Clusters) != 1 || len(result.Unclustered) != 1 {
		fmt.Printf("FAILED: expected 1 cluster and 1 unclustered keyword, got %d and %d\n",
			len(result.Clusters), len(result.Unclustered))
		os.Exit(1)
	}
	fmt.Println("PASSED: clustering run")

	fmt.Println("3. Merging clusters...")
	mergePayload := map[string]interface{}{
		"clusters": []map[string]interface{}{
			{
				"id": "c1", "name": "running shoes",
				"members": []map[string]interface{}{
					{"keyword_id": "k1", "text": "running shoes", "is_representative": true},
				},
			},
			{
				"id": "c2", "name": "trail shoes",
				"members": []map[string]interface{}{
					{"keyword_id": "k4", "text": "trail shoes", "is_representative": true},
				},
			},
		},
		"new_name": "all shoes",
	}
	if _, ok := sendRequest("POST", "/api/v1/clusters/merge", mergePayload); !ok {
		fmt.Println("FAILED: merge")
		os.Exit(1)
	}
	fmt.Println("PASSED: merge")

	fmt.Println("4. Splitting a cluster...")
	splitPayload := map[string]interface{}{
		"cluster": map[string]interface{}{
			"id": "c1", "name": "running shoes",
			"members": []map[string]interface{}{
				{"keyword_id": "k1", "text": "running shoes", "is_representative": true},
				{"keyword_id": "k2", "text": "buy running shoes"},
			},
		},
		"selected_texts": []string{"buy running shoes"},
		"new_name":       "purchase intent",
	}
	if _, ok := sendRequest("POST", "/api/v1/clusters/split", splitPayload); !ok {
		fmt.Println("FAILED: split")
		os.Exit(1)
	}
	fmt.Println("PASSED: split")

	fmt.Println("All smoke tests passed.")
}

func sendRequest(method, endpoint string, payload interface{}) ([]byte, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return respBody, true
}
