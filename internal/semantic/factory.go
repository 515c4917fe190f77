package semantic

import (
	"context"
	"fmt"
	"strings"

	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/config"
)

// New builds the Provider named by the config. An empty provider string means
// embeddings are off, not misconfigured.
func New(ctx context.Context, cfg config.SemanticConfig) (Provider, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "", "disabled", "none":
		return NewDisabledProvider(), nil

	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "gemini":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)

	default:
		return nil, fmt.Errorf("unsupported semantic provider: %s", provider)
	}
}
