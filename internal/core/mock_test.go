package core

import (
	"context"
)

// MockProvider records what the clusterer asked for and replays canned
// vectors or a canned error.
type MockProvider struct {
	Vectors  [][]float32
	Err      error
	Off      bool
	GotTexts []string
	Calls    int
}

func (m *MockProvider) Name() string  { return "mock" }
func (m *MockProvider) Enabled() bool { return !m.Off }

func (m *MockProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.Calls++
	m.GotTexts = append([]string(nil), texts...)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Vectors, nil
}

// Distance returns 0 for equal vectors and 1 otherwise, which keeps merge
// decisions in tests easy to stage.
func (m *MockProvider) Distance(a, b []float32) float64 {
	if len(a) != len(b) {
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			return 1
		}
	}
	return 0
}
