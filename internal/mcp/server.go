// ABOUTME: MCP server setup for the fitplan engine and store.
// ABOUTME: Wraps the MCP server with storage access, request logging, and weight/time helpers.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/logging"
	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Options tunes defaults the tools fall back on.
type Options struct {
	DefaultWeightKg float64
	RecommendLimit  int
}

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	logger    *slog.Logger
	opts      Options
	now       func() time.Time
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, logger *slog.Logger, opts Options) (*Server, error) {
	if repo == nil {
		return nil, errors.New("mcp server requires a repository")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.DefaultWeightKg <= 0 {
		opts.DefaultWeightKg = fitness.DefaultWeightKg
	}
	if opts.RecommendLimit <= 0 {
		opts.RecommendLimit = fitness.DefaultRecommendationLimit
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitplan",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}

	mcpServer.AddReceivingMiddleware(s.logRequests)
	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "mcp server starting", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) logRequests(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		ctx = logging.WithAttrs(ctx, slog.String("method", method))
		start := time.Now()
		result, err := next(ctx, method, req)
		if err != nil {
			s.logger.ErrorContext(ctx, "request failed", "error", err, "elapsed", time.Since(start))
			return result, err
		}
		s.logger.DebugContext(ctx, "request handled", "elapsed", time.Since(start))
		return result, nil
	}
}

// currentPlan returns the plan with the given ID prefix, or the current plan when id is empty.
func (s *Server) currentPlan(id string) (*models.Plan, error) {
	if id != "" {
		return s.repo.GetPlan(id)
	}
	return s.repo.GetCurrentPlan()
}

// currentWeight picks the body weight for estimates: an explicit value, the
// latest logged weight, the current plan's snapshot, then the configured default.
func (s *Server) currentWeight(explicit float64) float64 {
	if explicit > 0 {
		return explicit
	}
	if m, err := s.repo.GetLatestBodyMetric(); err == nil {
		return m.WeightKg
	}
	if p, err := s.repo.GetCurrentPlan(); err == nil && p.Biometrics.WeightKg > 0 {
		return p.Biometrics.WeightKg
	}
	return s.opts.DefaultWeightKg
}

// parseTimestamp accepts RFC3339, "2006-01-02 15:04", or a bare date.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: use RFC3339 or YYYY-MM-DD HH:MM", value)
}
