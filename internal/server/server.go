package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/config"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/editor"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/core/model"
	"github.com/WebFoundryAI/keywordfoundrypro-sub003/internal/semantic"
)

type Server struct {
	Config    *config.Config
	Clusterer *core.Clusterer
}

// NewServer loads configuration, builds the semantic provider named there,
// and wires the clusterer. Startup failures are fatal; a server without a
// working config has nothing useful to serve.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("failed to load configuration")
	}

	provider, err := semantic.New(context.Background(), cfg.Semantic)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.Semantic.Provider).Msg("failed to initialize semantic provider")
	}
	log.Info().Str("provider", provider.Name()).Msg("semantic provider ready")

	return &Server{
		Config:    cfg,
		Clusterer: core.NewClusterer(provider, cfg.Semantic.Timeout(), cfg.Clustering.MaxKeywords),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/api/v1/cluster", s.Cluster)
	r.POST("/api/v1/clusters/merge", s.MergeClusters)
	r.POST("/api/v1/clusters/split", s.SplitCluster)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"semantic_provider": s.Clusterer.Provider.Name(),
	})
}

// ClusterParamsPayload mirrors model.ClusteringParams with every field
// optional; absent fields fall back to the server's configured defaults.
type ClusterParamsPayload struct {
	OverlapThreshold  *int     `json:"overlap_threshold"`
	DistanceThreshold *float64 `json:"distance_threshold"`
	MinClusterSize    *int     `json:"min_cluster_size"`
	SemanticProvider  *string  `json:"semantic_provider"`
}

type ClusterRequest struct {
	Keywords []model.Keyword       `json:"keywords"`
	Params   *ClusterParamsPayload `json:"params"`
}

func (s *Server) Cluster(c *gin.Context) {
	var req ClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "kind": "validation"})
		return
	}

	params := s.resolveParams(req.Params)
	result, err := s.Clusterer.Cluster(c.Request.Context(), req.Keywords, params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveParams starts from the configured defaults and lets the request
// override fields one by one. Semantic grouping stays off unless the request
// asks for it.
func (s *Server) resolveParams(p *ClusterParamsPayload) model.ClusteringParams {
	params := model.ClusteringParams{
		OverlapThreshold:  s.Config.Clustering.OverlapThreshold,
		DistanceThreshold: s.Config.Clustering.DistanceThreshold,
		MinClusterSize:    s.Config.Clustering.MinClusterSize,
		SemanticProvider:  model.SemanticDisabled,
	}
	if p == nil {
		return params
	}
	if p.OverlapThreshold != nil {
		params.OverlapThreshold = *p.OverlapThreshold
	}
	if p.DistanceThreshold != nil {
		params.DistanceThreshold = *p.DistanceThreshold
	}
	if p.MinClusterSize != nil {
		params.MinClusterSize = *p.MinClusterSize
	}
	if p.SemanticProvider != nil {
		params.SemanticProvider = *p.SemanticProvider
	}
	return params
}

type MergeRequest struct {
	Clusters []model.Cluster `json:"clusters"`
	NewName  string          `json:"new_name"`
}

func (s *Server) MergeClusters(c *gin.Context) {
	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "kind": "validation"})
		return
	}

	merged, err := editor.Merge(req.Clusters, req.NewName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, merged)
}

type SplitRequest struct {
	Cluster       model.Cluster `json:"cluster"`
	SelectedTexts []string      `json:"selected_texts"`
	NewName       string        `json:"new_name"`
}

func (s *Server) SplitCluster(c *gin.Context) {
	var req SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "kind": "validation"})
		return
	}

	remaining, moved := editor.Split(req.Cluster, req.SelectedTexts, req.NewName)

	c.JSON(http.StatusOK, gin.H{
		"remaining": remaining,
		"new":       moved,
	})
}

// writeError maps pipeline failures onto status codes and stable error
// kinds, so API clients can branch without parsing messages.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
	case errors.Is(err, semantic.ErrMissingCredential):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "kind": "configuration"})
	case errors.Is(err, semantic.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "kind": "rate_limited"})
	case errors.Is(err, semantic.ErrAuth):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "kind": "auth"})
	case errors.Is(err, semantic.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "kind": "upstream"})
	default:
		log.Error().Err(err).Msg("clustering request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "kind": "internal"})
	}
}
