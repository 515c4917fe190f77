package semantic

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCredential))
}

func TestClassifyGeminiError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "unauthorized maps to auth",
			err:      &googleapi.Error{Code: http.StatusUnauthorized, Message: "bad key"},
			sentinel: ErrAuth,
		},
		{
			name:     "forbidden maps to auth",
			err:      &googleapi.Error{Code: http.StatusForbidden, Message: "blocked"},
			sentinel: ErrAuth,
		},
		{
			name:     "too many requests maps to rate limited",
			err:      &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota"},
			sentinel: ErrRateLimited,
		},
		{
			name:     "service unavailable maps to upstream",
			err:      &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "down"},
			sentinel: ErrUpstream,
		},
		{
			name:     "plain error maps to upstream",
			err:      errors.New("connection reset"),
			sentinel: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyGeminiError(tt.err)
			assert.True(t, errors.Is(got, tt.sentinel), "want %v, got %v", tt.sentinel, got)
		})
	}
}
