// ABOUTME: MCP resource implementations for fitplan.
// ABOUTME: Provides fitplan://plan, fitplan://today, and fitplan://catalog resources.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	planURI    = "fitplan://plan"
	todayURI   = "fitplan://today"
	catalogURI = "fitplan://catalog"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         planURI,
		Name:        "Current Fitness Plan",
		Description: "Targets, distribution, and weekly schedule of the current plan",
		MIMEType:    "application/json",
	}, s.handlePlanResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Plan",
		Description: "Today's scheduled session, daily progress, and recommended workouts",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         catalogURI,
		Name:        "Workout Catalog",
		Description: "Workout templates and MET values used for calorie estimates",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

// Resource handlers

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.repo.GetCurrentPlan()
	if errors.Is(err, storage.ErrNoPlan) {
		return jsonResource(planURI, map[string]any{"message": err.Error()})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return jsonResource(planURI, toPlanOutput(p))
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.now()

	p, err := s.repo.GetCurrentPlan()
	if errors.Is(err, storage.ErrNoPlan) {
		return jsonResource(todayURI, map[string]any{
			"date":            now.Format("2006-01-02"),
			"message":         err.Error(),
			"recommendations": fitness.RecommendWorkouts(nil, s.currentWeight(0), s.opts.RecommendLimit, false),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	item := p.Schedule.Today(now)
	progress, err := s.progress(p, "day")
	if err != nil {
		return nil, err
	}

	result := map[string]any{
		"date": now.Format("2006-01-02"),
		"scheduled": scheduleDay{
			Day:             item.DayOfWeek.String(),
			WorkoutType:     item.WorkoutType,
			DurationMinutes: item.DurationMinutes,
			TimeOfDay:       item.TimeOfDay,
			IsRestDay:       item.IsRestDay,
		},
		"progress": progress,
		"recommendations": fitness.RecommendWorkouts(
			p.Biometrics.WorkoutPreferences, s.currentWeight(0), s.opts.RecommendLimit, item.IsRestDay,
		),
	}
	return jsonResource(todayURI, result)
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(catalogURI, map[string]any{
		"templates":      fitness.Catalog(),
		"met_values":     fitness.METValues(),
		"recovery_types": fitness.RecoveryTypes(),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
