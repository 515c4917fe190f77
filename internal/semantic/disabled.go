package semantic

import "context"

// DisabledProvider satisfies Provider for runs that cluster on SERP overlap
// alone. It never reaches the network.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) Name() string  { return "disabled" }
func (p *DisabledProvider) Enabled() bool { return false }

// Embed returns one empty vector per input so callers that index by position
// keep working.
func (p *DisabledProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return make([][]float32, len(texts)), nil
}

// Distance always reports the unrelated distance.
func (p *DisabledProvider) Distance(a, b []float32) float64 {
	return 1.0
}
