// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers against a temp SQLite store, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Sunday, so the reference schedule (Mon/Tue strength, Thu/Sat cardio) has a rest day.
var refNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "fitplan.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func setupServer(t *testing.T) *Server {
	t.Helper()

	server, err := NewServer(setupTestDB(t), nil, Options{})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	server.now = func() time.Time { return refNow }
	return server
}

func referenceBiometrics() biometricsInput {
	return biometricsInput{
		WeightKg:           70,
		HeightCm:           170,
		Birthdate:          "1990-01-01",
		Gender:             "male",
		ActivityLevel:      "moderately_active",
		FitnessGoal:        "StayFit",
		WorkoutPreferences: []string{"strength", "cardio"},
	}
}

func createReferencePlan(t *testing.T, server *Server) planOutput {
	t.Helper()
	_, out, err := server.handleCreatePlan(context.Background(), &mcp.CallToolRequest{}, createPlanInput{
		Name:       "Reference",
		Biometrics: referenceBiometrics(),
	})
	if err != nil {
		t.Fatalf("handleCreatePlan failed: %v", err)
	}
	return out
}

func TestNewServer(t *testing.T) {
	server := setupServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
	if server.opts.DefaultWeightKg != fitness.DefaultWeightKg || server.opts.RecommendLimit != fitness.DefaultRecommendationLimit {
		t.Errorf("Expected defaulted options, got %+v", server.opts)
	}

	if _, err := NewServer(nil, nil, Options{}); err == nil {
		t.Error("Expected error for nil repository")
	}
}

func TestHandleComputeTargets(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, out, err := server.handleComputeTargets(ctx, &mcp.CallToolRequest{}, referenceBiometrics())
	if err != nil {
		t.Fatalf("handleComputeTargets failed: %v", err)
	}
	if out.WeeklyCalorieBurnTarget != 17279 || out.WeeklyWorkoutMinutes != 180 || out.WeeklyWorkoutFrequencyTarget != 4 {
		t.Errorf("unexpected weekly targets: %+v", out)
	}
	if out.DailyMoveTarget != 2468 || out.DailyExerciseTarget != 26 {
		t.Errorf("unexpected daily targets: %+v", out)
	}

	aliased := referenceBiometrics()
	aliased.FitnessGoal = "stay_fit"
	if _, got, err := server.handleComputeTargets(ctx, &mcp.CallToolRequest{}, aliased); err != nil || got.WeeklyWorkoutMinutes != 180 {
		t.Errorf("snake_case goal alias: got %+v, err %v", got, err)
	}

	tests := []struct {
		name      string
		mutate    func(*biometricsInput)
		errSubstr string
	}{
		{"bad goal", func(b *biometricsInput) { b.FitnessGoal = "get_huge" }, "unknown fitness goal"},
		{"bad level", func(b *biometricsInput) { b.ActivityLevel = "active" }, "unknown activity level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceBiometrics()
			tt.mutate(&in)
			_, _, err := server.handleComputeTargets(ctx, &mcp.CallToolRequest{}, in)
			if err == nil || !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("expected error containing %q, got %v", tt.errSubstr, err)
			}
		})
	}
}

func TestHandleCreateAndGetPlan(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	created := createReferencePlan(t, server)
	if created.Name != "Reference" || len(created.Schedule) != 7 {
		t.Fatalf("unexpected plan output: %+v", created)
	}
	if created.Schedule[0].WorkoutType != "strength" || !created.Schedule[2].IsRestDay {
		t.Errorf("unexpected schedule: %+v", created.Schedule)
	}

	_, got, err := server.handleGetPlan(ctx, &mcp.CallToolRequest{}, planRefInput{})
	if err != nil {
		t.Fatalf("handleGetPlan failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("current plan ID = %s, want %s", got.ID, created.ID)
	}

	_, got, err = server.handleGetPlan(ctx, &mcp.CallToolRequest{}, planRefInput{PlanID: created.ID[:8]})
	if err != nil || got.ID != created.ID {
		t.Errorf("get by prefix: got %s, err %v", got.ID, err)
	}
}

func TestHandleGetPlanWithoutPlan(t *testing.T) {
	server := setupServer(t)

	_, _, err := server.handleGetPlan(context.Background(), &mcp.CallToolRequest{}, planRefInput{})
	if !errors.Is(err, storage.ErrNoPlan) {
		t.Errorf("expected ErrNoPlan, got %v", err)
	}
}

func TestHandleRescaleAndEditDistribution(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()
	createReferencePlan(t, server)

	_, out, err := server.handleRescaleDistribution(ctx, &mcp.CallToolRequest{}, rescaleInput{NewTotal: 200})
	if err != nil {
		t.Fatalf("handleRescaleDistribution failed: %v", err)
	}
	sessions, minutes := out.Working.DistributionTotals()
	if minutes != 200 || out.Working.WeeklyWorkoutMinutes != 200 {
		t.Errorf("rescaled minutes = %d/%d, want 200", minutes, out.Working.WeeklyWorkoutMinutes)
	}
	if sessions != 4 {
		t.Errorf("sessions changed to %d", sessions)
	}
	if out.Original.WeeklyWorkoutMinutes != 180 {
		t.Errorf("original targets modified: %+v", out.Original)
	}

	if _, _, err := server.handleRescaleDistribution(ctx, &mcp.CallToolRequest{}, rescaleInput{NewTotal: 5, Field: "laps"}); err == nil {
		t.Error("Expected error for unknown field")
	}

	_, out, err = server.handleEditDistribution(ctx, &mcp.CallToolRequest{}, editDistributionInput{
		WorkoutType: "Cardio", Field: "sessions", Value: 3,
	})
	if err != nil {
		t.Fatalf("handleEditDistribution failed: %v", err)
	}
	if out.Working.WeeklyWorkoutFrequencyTarget != 5 {
		t.Errorf("frequency = %d, want 5", out.Working.WeeklyWorkoutFrequencyTarget)
	}

	_, out, err = server.handleGenerateSchedule(ctx, &mcp.CallToolRequest{}, planRefInput{})
	if err != nil {
		t.Fatalf("handleGenerateSchedule failed: %v", err)
	}
	workoutDays := 0
	for _, d := range out.Schedule {
		if !d.IsRestDay {
			workoutDays++
		}
	}
	if workoutDays != 5 {
		t.Errorf("workout days = %d, want 5", workoutDays)
	}

	if _, _, err := server.handleEditDistribution(ctx, &mcp.CallToolRequest{}, editDistributionInput{WorkoutType: "yoga", Value: 1}); err == nil {
		t.Error("Expected error for workout type missing from the distribution")
	}
}

func TestHandleEstimates(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, cal, err := server.handleEstimateCalories(ctx, &mcp.CallToolRequest{}, estimateInput{ActivityType: "Running", DurationMinutes: 30, WeightKg: 80})
	if err != nil {
		t.Fatalf("handleEstimateCalories failed: %v", err)
	}
	if want := fitness.EstimateCalories("running", 30, 80); cal.Calories != want {
		t.Errorf("calories = %d, want %d", cal.Calories, want)
	}

	// No explicit weight and nothing logged: configured default applies.
	_, cal, _ = server.handleEstimateCalories(ctx, &mcp.CallToolRequest{}, estimateInput{ActivityType: "yoga", DurationMinutes: 40})
	if cal.WeightKg != 70 {
		t.Errorf("default weight = %v, want 70", cal.WeightKg)
	}

	if _, _, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{WeightKg: 50}); err != nil {
		t.Fatalf("handleLogWeight failed: %v", err)
	}
	_, cal, _ = server.handleEstimateCalories(ctx, &mcp.CallToolRequest{}, estimateInput{ActivityType: "yoga", DurationMinutes: 40})
	if cal.WeightKg != 50 || cal.Calories != 100 {
		t.Errorf("estimate with logged weight = %+v, want 50 kg / 100 kcal", cal)
	}

	_, steps, err := server.handleEstimateSteps(ctx, &mcp.CallToolRequest{}, estimateInput{ActivityType: "walking", DurationMinutes: 10})
	if err != nil || steps.Steps != 1000 {
		t.Errorf("steps = %d, err %v; want 1000", steps.Steps, err)
	}
}

func TestHandleRecommendWorkouts(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, out, err := server.handleRecommendWorkouts(ctx, &mcp.CallToolRequest{}, recommendInput{PreferredTypes: []string{"strength"}})
	if err != nil {
		t.Fatalf("handleRecommendWorkouts failed: %v", err)
	}
	if out.RestDay || len(out.Recommendations) != 2 || out.Recommendations[0].ID != "up-power" {
		t.Errorf("unexpected recommendations without plan: %+v", out)
	}

	createReferencePlan(t, server)
	_, out, err = server.handleRecommendWorkouts(ctx, &mcp.CallToolRequest{}, recommendInput{})
	if err != nil {
		t.Fatalf("handleRecommendWorkouts failed: %v", err)
	}
	if !out.RestDay {
		t.Error("Sunday should be a rest day in the reference schedule")
	}
	if len(out.Recommendations) != 3 || out.Recommendations[0].ID != "med-deep" {
		t.Errorf("unexpected rest-day recommendations: %+v", out.Recommendations)
	}

	training := false
	_, out, _ = server.handleRecommendWorkouts(ctx, &mcp.CallToolRequest{}, recommendInput{RestDay: &training, Limit: 1})
	if out.RestDay || len(out.Recommendations) != 1 || out.Recommendations[0].Type != "strength" {
		t.Errorf("unexpected training-day recommendations: %+v", out.Recommendations)
	}
}

func TestHandleActivities(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logActivityInput
		errSubstr string
	}{
		{"missing type", logActivityInput{DurationMinutes: 30}, "activity_type is required"},
		{"zero duration", logActivityInput{ActivityType: "running"}, "duration_minutes must be positive"},
		{"bad timestamp", logActivityInput{ActivityType: "running", DurationMinutes: 30, StartedAt: "yesterday"}, "invalid timestamp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleLogActivity(ctx, &mcp.CallToolRequest{}, tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("expected error containing %q, got %v", tt.errSubstr, err)
			}
		})
	}

	_, logged, err := server.handleLogActivity(ctx, &mcp.CallToolRequest{}, logActivityInput{
		ActivityType: "walking", DurationMinutes: 10, StartedAt: "2025-06-15 08:00", Notes: "loop",
	})
	if err != nil {
		t.Fatalf("handleLogActivity failed: %v", err)
	}
	if logged.Steps != 1000 || logged.Status != string(fitness.StatusCompleted) || logged.Notes != "loop" {
		t.Errorf("unexpected logged activity: %+v", logged)
	}

	_, started, err := server.handleStartActivity(ctx, &mcp.CallToolRequest{}, startActivityInput{ActivityType: "yoga"})
	if err != nil {
		t.Fatalf("handleStartActivity failed: %v", err)
	}
	if started.Status != string(fitness.StatusInProgress) {
		t.Errorf("started status = %s", started.Status)
	}

	server.now = func() time.Time { return time.Now().Add(20 * time.Minute) }
	_, stopped, err := server.handleStopActivity(ctx, &mcp.CallToolRequest{}, stopActivityInput{ID: started.ID})
	if err != nil {
		t.Fatalf("handleStopActivity failed: %v", err)
	}
	if stopped.Status != string(fitness.StatusCompleted) || stopped.DurationMinutes < 19.9 {
		t.Errorf("unexpected stopped activity: %+v", stopped)
	}
	if _, _, err := server.handleStopActivity(ctx, &mcp.CallToolRequest{}, stopActivityInput{ID: started.ID}); err == nil {
		t.Error("Expected error stopping an activity twice")
	}

	_, list, err := server.handleListActivities(ctx, &mcp.CallToolRequest{}, listActivitiesInput{ActivityType: "WALKING"})
	if err != nil {
		t.Fatalf("handleListActivities failed: %v", err)
	}
	if len(list.Activities) != 1 || list.Activities[0].ID != logged.ID {
		t.Errorf("unexpected filtered list: %+v", list)
	}

	_, list, _ = server.handleListActivities(ctx, &mcp.CallToolRequest{}, listActivitiesInput{ActivityType: "swimming"})
	if len(list.Activities) != 0 || list.Message != "No activities found." {
		t.Errorf("expected empty list message, got %+v", list)
	}
}

func TestHandleGetProgress(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, progressInput{}); !errors.Is(err, storage.ErrNoPlan) {
		t.Errorf("expected ErrNoPlan, got %v", err)
	}

	createReferencePlan(t, server)
	for _, start := range []string{"2025-06-10 07:00", "2025-06-15 07:00"} {
		if _, _, err := server.handleLogActivity(ctx, &mcp.CallToolRequest{}, logActivityInput{
			ActivityType: "strength", DurationMinutes: 45, StartedAt: start,
		}); err != nil {
			t.Fatalf("handleLogActivity failed: %v", err)
		}
	}
	// Previous week, excluded.
	if _, _, err := server.handleLogActivity(ctx, &mcp.CallToolRequest{}, logActivityInput{
		ActivityType: "strength", DurationMinutes: 45, StartedAt: "2025-06-08 07:00",
	}); err != nil {
		t.Fatalf("handleLogActivity failed: %v", err)
	}

	_, week, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, progressInput{})
	if err != nil {
		t.Fatalf("handleGetProgress failed: %v", err)
	}
	if week.Sessions != 2 || week.Minutes != 90 || week.SessionTarget != 4 || week.SessionPercent != 50 {
		t.Errorf("unexpected weekly progress: %+v", week)
	}

	_, day, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, progressInput{Period: "day"})
	if err != nil {
		t.Fatalf("handleGetProgress(day) failed: %v", err)
	}
	if day.Sessions != 1 || day.MinuteTarget != 26 {
		t.Errorf("unexpected daily progress: %+v", day)
	}

	if _, _, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, progressInput{Period: "month"}); err == nil {
		t.Error("Expected error for unknown period")
	}
}

func TestHandleLogWeight(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{}); err == nil {
		t.Error("Expected error for zero weight")
	}

	_, out, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{
		WeightKg: 72.4, BodyFatPercent: 18, RecordedAt: "2025-06-14T07:30:00Z", Notes: "morning",
	})
	if err != nil {
		t.Fatalf("handleLogWeight failed: %v", err)
	}
	if !strings.Contains(out.Message, "72.4 kg") {
		t.Errorf("unexpected message: %s", out.Message)
	}

	latest, err := server.repo.GetLatestBodyMetric()
	if err != nil {
		t.Fatalf("GetLatestBodyMetric failed: %v", err)
	}
	if latest.BodyFatPercent == nil || *latest.BodyFatPercent != 18 {
		t.Errorf("body fat not stored: %+v", latest)
	}
}

func readResource(t *testing.T, handler mcp.ResourceHandler) map[string]any {
	t.Helper()

	res, err := handler(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("resource handler failed: %v", err)
	}
	if len(res.Contents) != 1 || res.Contents[0].MIMEType != "application/json" {
		t.Fatalf("unexpected contents: %+v", res.Contents)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(res.Contents[0].Text), &out); err != nil {
		t.Fatalf("resource is not JSON: %v", err)
	}
	return out
}

func TestResources(t *testing.T) {
	server := setupServer(t)

	empty := readResource(t, server.handlePlanResource)
	if _, ok := empty["message"]; !ok {
		t.Errorf("expected message without a plan, got %v", empty)
	}

	today := readResource(t, server.handleTodayResource)
	if recs, ok := today["recommendations"].([]any); !ok || len(recs) != 3 {
		t.Errorf("expected 3 fallback recommendations, got %v", today["recommendations"])
	}

	created := createReferencePlan(t, server)
	plan := readResource(t, server.handlePlanResource)
	if plan["id"] != created.ID {
		t.Errorf("plan resource id = %v, want %s", plan["id"], created.ID)
	}

	today = readResource(t, server.handleTodayResource)
	scheduled, _ := today["scheduled"].(map[string]any)
	if scheduled["day"] != "Sunday" || scheduled["is_rest_day"] != true {
		t.Errorf("unexpected scheduled day: %v", scheduled)
	}
	if _, ok := today["progress"]; !ok {
		t.Error("expected progress in today resource")
	}

	catalog := readResource(t, server.handleCatalogResource)
	if templates, ok := catalog["templates"].([]any); !ok || len(templates) != len(fitness.Catalog()) {
		t.Errorf("unexpected catalog templates: %v", catalog["templates"])
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, in := range []string{"2025-06-15T08:00:00Z", "2025-06-15 08:00", "2025-06-15"} {
		if _, err := parseTimestamp(in); err != nil {
			t.Errorf("parseTimestamp(%q) failed: %v", in, err)
		}
	}
	if _, err := parseTimestamp("15/06/2025"); err == nil {
		t.Error("Expected error for unsupported layout")
	}
}
