package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

// ClusteringConfig holds the server-side defaults applied when a clustering
// request does not override a parameter, plus the hard input ceiling.
type ClusteringConfig struct {
	OverlapThreshold  int     `toml:"overlap_threshold"`
	DistanceThreshold float64 `toml:"distance_threshold"`
	MinClusterSize    int     `toml:"min_cluster_size"`
	MaxKeywords       int     `toml:"max_keywords"`
}

type SemanticConfig struct {
	Provider    string `toml:"provider"`
	Model       string `toml:"model"`
	APIKey      string `toml:"api_key"`
	BaseURL     string `toml:"base_url"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// Timeout returns the embedding call deadline, falling back to 30s when the
// config leaves it unset.
func (c SemanticConfig) Timeout() time.Duration {
	if c.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Clustering ClusteringConfig `toml:"clustering"`
	Semantic   SemanticConfig   `toml:"semantic"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Clustering: ClusteringConfig{
			OverlapThreshold:  3,
			DistanceThreshold: 0.3,
			MinClusterSize:    2,
			MaxKeywords:       2000,
		},
		Semantic: SemanticConfig{
			Provider:    "disabled",
			TimeoutSecs: 30,
		},
	}
}

// Load reads the TOML config at path, then applies environment overrides. A
// missing file is not an error; the defaults carry the server on their own.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("SEMANTIC_PROVIDER"); v != "" {
		c.Semantic.Provider = v
	}
	if v := os.Getenv("SEMANTIC_MODEL"); v != "" {
		c.Semantic.Model = v
	}
	if v := os.Getenv("SEMANTIC_API_KEY"); v != "" {
		c.Semantic.APIKey = v
	}
	if v := os.Getenv("SEMANTIC_BASE_URL"); v != "" {
		c.Semantic.BaseURL = v
	}
	if v := os.Getenv("MAX_KEYWORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Clustering.MaxKeywords = n
		}
	}
}
