// ABOUTME: MCP tool implementations for fitplan.
// ABOUTME: Exposes the pure engine operations plus plan, activity, and weight persistence.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// Engine operations
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_targets",
		Description: "Compute weekly calorie, minute and session targets plus a per-type workout split from biometrics",
	}, s.handleComputeTargets)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rescale_distribution",
		Description: "Set a new weekly total (minutes or sessions) on a plan, redistributing it proportionally to the original split",
	}, s.handleRescaleDistribution)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "edit_distribution",
		Description: "Overwrite minutes or sessions for one workout type in a plan's distribution",
	}, s.handleEditDistribution)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_schedule",
		Description: "Rebuild a plan's weekly schedule from its current distribution, discarding manual edits",
	}, s.handleGenerateSchedule)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_calories",
		Description: "Estimate calories burned for an activity type and duration using MET values",
	}, s.handleEstimateCalories)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_steps",
		Description: "Estimate steps for an activity type and duration",
	}, s.handleEstimateSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recommend_workouts",
		Description: "Recommend workouts from the catalog for today (or a rest day) with calorie estimates",
	}, s.handleRecommendWorkouts)

	// Persisted operations
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_plan",
		Description: "Compute targets and a schedule from biometrics and save them as the current plan",
	}, s.handleCreatePlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_plan",
		Description: "Get a plan (the current one by default) with targets and schedule",
	}, s.handleGetPlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a completed activity; calories and steps are estimated automatically",
	}, s.handleLogActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_activity",
		Description: "Start a live activity timer",
	}, s.handleStartActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "stop_activity",
		Description: "Stop a running activity by ID or ID prefix",
	}, s.handleStopActivity)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List recent activities, optionally filtered by type",
	}, s.handleListActivities)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Summarize this week's (or today's) activities against the current plan's targets",
	}, s.handleGetProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a body weight measurement",
	}, s.handleLogWeight)
}

// Tool input/output types

type biometricsInput struct {
	WeightKg           float64  `json:"weight_kg,omitempty" jsonschema:"Body weight in kg (defaults to 70)"`
	HeightCm           float64  `json:"height_cm,omitempty" jsonschema:"Height in cm (defaults to 170)"`
	Birthdate          string   `json:"birthdate,omitempty" jsonschema:"Birthdate as YYYY-MM-DD (age defaults to 25)"`
	Gender             string   `json:"gender,omitempty" jsonschema:"male or female"`
	ActivityLevel      string   `json:"activity_level,omitempty" jsonschema:"sedentary, lightly_active, moderately_active, very_active or extremely_active"`
	FitnessGoal        string   `json:"fitness_goal,omitempty" jsonschema:"LoseWeight, BuildMuscle, StayFit or ImproveEndurance"`
	WorkoutPreferences []string `json:"workout_preferences,omitempty" jsonschema:"Preferred workout types such as strength, cardio, hiit, yoga"`
}

func (b biometricsInput) toInput() (fitness.BiometricInput, error) {
	goal := fitness.GoalStayFit
	if b.FitnessGoal != "" {
		g, ok := fitness.ParseGoal(b.FitnessGoal)
		if !ok {
			return fitness.BiometricInput{}, fmt.Errorf("unknown fitness goal: %s", b.FitnessGoal)
		}
		goal = g
	}

	level := fitness.LevelModeratelyActive
	if b.ActivityLevel != "" {
		if !fitness.IsValidActivityLevel(b.ActivityLevel) {
			return fitness.BiometricInput{}, fmt.Errorf("unknown activity level: %s", b.ActivityLevel)
		}
		level = fitness.ActivityLevel(b.ActivityLevel)
	}

	return fitness.BiometricInput{
		WeightKg:           b.WeightKg,
		HeightCm:           b.HeightCm,
		Birthdate:          b.Birthdate,
		Gender:             b.Gender,
		ActivityLevel:      level,
		FitnessGoal:        goal,
		WorkoutPreferences: b.WorkoutPreferences,
	}, nil
}

type rescaleInput struct {
	PlanID   string `json:"plan_id,omitempty" jsonschema:"Plan ID or prefix (defaults to the current plan)"`
	NewTotal int    `json:"new_total" jsonschema:"New weekly total; values <= 0 leave the plan unchanged"`
	Field    string `json:"field,omitempty" jsonschema:"minutes (default) or sessions"`
}

type editDistributionInput struct {
	PlanID      string `json:"plan_id,omitempty" jsonschema:"Plan ID or prefix (defaults to the current plan)"`
	WorkoutType string `json:"workout_type" jsonschema:"Workout type to edit"`
	Field       string `json:"field,omitempty" jsonschema:"minutes (default) or sessions"`
	Value       int    `json:"value" jsonschema:"New value for the field"`
}

type planRefInput struct {
	PlanID string `json:"plan_id,omitempty" jsonschema:"Plan ID or prefix (defaults to the current plan)"`
}

type estimateInput struct {
	ActivityType    string  `json:"activity_type" jsonschema:"Activity type such as running, cycling, yoga"`
	DurationMinutes float64 `json:"duration_minutes" jsonschema:"Duration in minutes"`
	WeightKg        float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg (defaults to latest logged weight)"`
}

type caloriesOutput struct {
	ActivityType string  `json:"activity_type"`
	MET          float64 `json:"met"`
	WeightKg     float64 `json:"weight_kg"`
	Calories     int     `json:"calories"`
}

type stepsOutput struct {
	ActivityType string `json:"activity_type"`
	Steps        int    `json:"steps"`
}

type recommendInput struct {
	RestDay        *bool    `json:"rest_day,omitempty" jsonschema:"Treat today as a rest day (defaults to the current plan's schedule)"`
	Limit          int      `json:"limit,omitempty" jsonschema:"Max results (default 3)"`
	PreferredTypes []string `json:"preferred_types,omitempty" jsonschema:"Preferred workout types (defaults to the plan's preferences)"`
	WeightKg       float64  `json:"weight_kg,omitempty" jsonschema:"Body weight in kg for calorie estimates"`
}

type recommendationOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Duration    int    `json:"duration"`
	Intensity   string `json:"intensity"`
	Tag         string `json:"tag"`
	Calories    int    `json:"calories"`
}

type recommendOutput struct {
	RestDay         bool                   `json:"rest_day"`
	Recommendations []recommendationOutput `json:"recommendations"`
}

type createPlanInput struct {
	Name       string          `json:"name,omitempty" jsonschema:"Optional plan name"`
	Biometrics biometricsInput `json:"biometrics" jsonschema:"Biometric snapshot the plan is computed from"`
}

type scheduleDay struct {
	Day             string `json:"day"`
	WorkoutType     string `json:"workout_type,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	TimeOfDay       string `json:"time_of_day"`
	IsRestDay       bool   `json:"is_rest_day"`
}

type planOutput struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Goal     string                 `json:"goal"`
	Original fitness.FitnessTargets `json:"original"`
	Working  fitness.FitnessTargets `json:"working"`
	Schedule []scheduleDay          `json:"schedule"`
	Overflow int                    `json:"overflow,omitempty"`
	Message  string                 `json:"message,omitempty"`
}

type logActivityInput struct {
	ActivityType    string  `json:"activity_type" jsonschema:"Activity type such as running, strength, yoga"`
	DurationMinutes float64 `json:"duration_minutes" jsonschema:"Duration in minutes"`
	StartedAt       string  `json:"started_at,omitempty" jsonschema:"Start timestamp (ISO 8601), defaults to duration minutes ago"`
	WeightKg        float64 `json:"weight_kg,omitempty" jsonschema:"Body weight in kg (defaults to latest logged weight)"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type startActivityInput struct {
	ActivityType string `json:"activity_type" jsonschema:"Activity type such as running, strength, yoga"`
	Notes        string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type stopActivityInput struct {
	ID string `json:"id" jsonschema:"Activity ID or prefix"`
}

type activityOutput struct {
	ID              string  `json:"id"`
	ActivityType    string  `json:"activity_type"`
	Status          string  `json:"status"`
	StartedAt       string  `json:"started_at"`
	DurationMinutes float64 `json:"duration_minutes"`
	Calories        int     `json:"calories"`
	Steps           int     `json:"steps"`
	Notes           string  `json:"notes,omitempty"`
	Message         string  `json:"message,omitempty"`
}

type listActivitiesInput struct {
	ActivityType string `json:"activity_type,omitempty" jsonschema:"Filter by activity type"`
	Since        string `json:"since,omitempty" jsonschema:"Only activities started at or after this timestamp"`
	Limit        int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listActivitiesOutput struct {
	Activities []activityOutput `json:"activities"`
	Message    string           `json:"message,omitempty"`
}

type progressInput struct {
	Period string `json:"period,omitempty" jsonschema:"week (default) or day"`
}

type progressOutput struct {
	Period         string  `json:"period"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Sessions       int     `json:"sessions"`
	Minutes        float64 `json:"minutes"`
	Calories       int     `json:"calories"`
	Steps          int     `json:"steps"`
	SessionTarget  int     `json:"session_target"`
	MinuteTarget   int     `json:"minute_target"`
	CalorieTarget  int     `json:"calorie_target"`
	SessionPercent float64 `json:"session_percent"`
	MinutePercent  float64 `json:"minute_percent"`
	CaloriePercent float64 `json:"calorie_percent"`
}

type logWeightInput struct {
	WeightKg       float64 `json:"weight_kg" jsonschema:"Body weight in kg"`
	BodyFatPercent float64 `json:"body_fat_percent,omitempty" jsonschema:"Optional body fat percentage"`
	RecordedAt     string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes          string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type weightOutput struct {
	ID       string  `json:"id"`
	WeightKg float64 `json:"weight_kg"`
	Message  string  `json:"message"`
}

// Tool handlers

func (s *Server) handleComputeTargets(ctx context.Context, req *mcp.CallToolRequest, input biometricsInput) (*mcp.CallToolResult, fitness.FitnessTargets, error) {
	in, err := input.toInput()
	if err != nil {
		return nil, fitness.FitnessTargets{}, err
	}
	return nil, fitness.ComputeTargets(in, s.now()), nil
}

func (s *Server) handleRescaleDistribution(ctx context.Context, req *mcp.CallToolRequest, input rescaleInput) (*mcp.CallToolResult, planOutput, error) {
	field, err := parseField(input.Field)
	if err != nil {
		return nil, planOutput{}, err
	}

	p, err := s.currentPlan(input.PlanID)
	if err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}

	p.Rescale(input.NewTotal, field)
	if err := s.repo.SavePlan(p); err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to save plan: %w", err)
	}

	out := toPlanOutput(p)
	out.Message = fmt.Sprintf("Weekly %s total is now %d", field, p.Working.Total(field))
	return nil, out, nil
}

func (s *Server) handleEditDistribution(ctx context.Context, req *mcp.CallToolRequest, input editDistributionInput) (*mcp.CallToolResult, planOutput, error) {
	field, err := parseField(input.Field)
	if err != nil {
		return nil, planOutput{}, err
	}

	p, err := s.currentPlan(input.PlanID)
	if err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}

	index := -1
	for i, d := range p.Working.WorkoutTypeDistribution {
		if strings.EqualFold(d.WorkoutType, input.WorkoutType) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, planOutput{}, fmt.Errorf("workout type %q is not in the plan's distribution", input.WorkoutType)
	}

	if err := p.EditDistribution(index, field, input.Value); err != nil {
		return nil, planOutput{}, err
	}
	if err := s.repo.SavePlan(p); err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to save plan: %w", err)
	}

	out := toPlanOutput(p)
	out.Message = fmt.Sprintf("Set %s %s to %d", input.WorkoutType, field, input.Value)
	return nil, out, nil
}

func (s *Server) handleGenerateSchedule(ctx context.Context, req *mcp.CallToolRequest, input planRefInput) (*mcp.CallToolResult, planOutput, error) {
	p, err := s.currentPlan(input.PlanID)
	if err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}

	p.RegenerateSchedule()
	if err := s.repo.SavePlan(p); err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to save plan: %w", err)
	}

	out := toPlanOutput(p)
	out.Message = fmt.Sprintf("Scheduled %d workout days", p.Schedule.WorkoutDays())
	return nil, out, nil
}

func (s *Server) handleEstimateCalories(ctx context.Context, req *mcp.CallToolRequest, input estimateInput) (*mcp.CallToolResult, caloriesOutput, error) {
	weight := s.currentWeight(input.WeightKg)
	return nil, caloriesOutput{
		ActivityType: input.ActivityType,
		MET:          fitness.MET(input.ActivityType),
		WeightKg:     weight,
		Calories:     fitness.EstimateCalories(input.ActivityType, input.DurationMinutes, weight),
	}, nil
}

func (s *Server) handleEstimateSteps(ctx context.Context, req *mcp.CallToolRequest, input estimateInput) (*mcp.CallToolResult, stepsOutput, error) {
	return nil, stepsOutput{
		ActivityType: input.ActivityType,
		Steps:        fitness.EstimateSteps(input.ActivityType, input.DurationMinutes),
	}, nil
}

func (s *Server) handleRecommendWorkouts(ctx context.Context, req *mcp.CallToolRequest, input recommendInput) (*mcp.CallToolResult, recommendOutput, error) {
	prefs := input.PreferredTypes
	restDay := false

	p, err := s.repo.GetCurrentPlan()
	switch {
	case err == nil:
		if len(prefs) == 0 {
			prefs = p.Biometrics.WorkoutPreferences
		}
		restDay = p.Schedule.Today(s.now()).IsRestDay
	case !errors.Is(err, storage.ErrNoPlan):
		return nil, recommendOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}
	if input.RestDay != nil {
		restDay = *input.RestDay
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.opts.RecommendLimit
	}

	out := recommendOutput{RestDay: restDay, Recommendations: []recommendationOutput{}}
	for _, r := range fitness.RecommendWorkouts(prefs, s.currentWeight(input.WeightKg), limit, restDay) {
		out.Recommendations = append(out.Recommendations, recommendationOutput{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Type:        r.Type,
			Duration:    r.Duration,
			Intensity:   string(r.Intensity),
			Tag:         r.Tag,
			Calories:    r.Calories,
		})
	}
	return nil, out, nil
}

func (s *Server) handleCreatePlan(ctx context.Context, req *mcp.CallToolRequest, input createPlanInput) (*mcp.CallToolResult, planOutput, error) {
	in, err := input.Biometrics.toInput()
	if err != nil {
		return nil, planOutput{}, err
	}

	p := models.NewPlan(in)
	if input.Name != "" {
		p.WithName(input.Name)
	}
	if err := s.repo.SavePlan(p); err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to create plan: %w", err)
	}

	out := toPlanOutput(p)
	out.Message = fmt.Sprintf("Created plan %s (ID: %s)", p.DisplayName(), p.ID.String()[:8])
	return nil, out, nil
}

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input planRefInput) (*mcp.CallToolResult, planOutput, error) {
	p, err := s.currentPlan(input.PlanID)
	if err != nil {
		return nil, planOutput{}, fmt.Errorf("failed to get plan: %w", err)
	}
	return nil, toPlanOutput(p), nil
}

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	if input.ActivityType == "" {
		return nil, activityOutput{}, errors.New("activity_type is required")
	}
	if input.DurationMinutes <= 0 {
		return nil, activityOutput{}, errors.New("duration_minutes must be positive")
	}

	a := models.NewActivity(input.ActivityType).WithWeight(s.currentWeight(input.WeightKg))
	start := s.now().Add(-time.Duration(input.DurationMinutes * float64(time.Minute)))
	if input.StartedAt != "" {
		t, err := parseTimestamp(input.StartedAt)
		if err != nil {
			return nil, activityOutput{}, err
		}
		start = t
	}
	a.WithStartedAt(start).WithDuration(input.DurationMinutes)
	if input.Notes != "" {
		a.WithNotes(input.Notes)
	}

	if err := s.repo.CreateActivity(a); err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to log activity: %w", err)
	}

	out := toActivityOutput(a, s.now())
	out.Message = fmt.Sprintf("Logged %s: %.0f min, %d kcal (ID: %s)", a.Type, a.DurationMinutes, a.Calories, out.ID)
	return nil, out, nil
}

func (s *Server) handleStartActivity(ctx context.Context, req *mcp.CallToolRequest, input startActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	if input.ActivityType == "" {
		return nil, activityOutput{}, errors.New("activity_type is required")
	}

	a := models.NewActivity(input.ActivityType).WithWeight(s.currentWeight(0))
	if input.Notes != "" {
		a.WithNotes(input.Notes)
	}
	if err := s.repo.CreateActivity(a); err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to start activity: %w", err)
	}

	out := toActivityOutput(a, s.now())
	out.Message = fmt.Sprintf("Started %s (ID: %s)", a.Type, out.ID)
	return nil, out, nil
}

func (s *Server) handleStopActivity(ctx context.Context, req *mcp.CallToolRequest, input stopActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	a, err := s.repo.GetActivity(input.ID)
	if err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to get activity: %w", err)
	}
	if !a.IsRunning() {
		return nil, activityOutput{}, fmt.Errorf("activity %s is not running", a.ID.String()[:8])
	}

	a.Stop(s.now())
	if err := s.repo.UpdateActivity(a); err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to stop activity: %w", err)
	}

	out := toActivityOutput(a, s.now())
	out.Message = fmt.Sprintf("Stopped %s after %.1f min, %d kcal", a.Type, a.DurationMinutes, a.Calories)
	return nil, out, nil
}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, listActivitiesOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var activityType *string
	if input.ActivityType != "" {
		activityType = &input.ActivityType
	}

	var since *time.Time
	if input.Since != "" {
		t, err := parseTimestamp(input.Since)
		if err != nil {
			return nil, listActivitiesOutput{}, err
		}
		since = &t
	}

	activities, err := s.repo.ListActivities(activityType, since, input.Limit)
	if err != nil {
		return nil, listActivitiesOutput{}, fmt.Errorf("failed to list activities: %w", err)
	}

	out := listActivitiesOutput{Activities: []activityOutput{}}
	if len(activities) == 0 {
		out.Message = "No activities found."
		return nil, out, nil
	}
	now := s.now()
	for _, a := range activities {
		out.Activities = append(out.Activities, toActivityOutput(a, now))
	}
	return nil, out, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input progressInput) (*mcp.CallToolResult, progressOutput, error) {
	period := strings.ToLower(input.Period)
	if period == "" {
		period = "week"
	}
	if period != "week" && period != "day" {
		return nil, progressOutput{}, fmt.Errorf("unknown period: %s (use week or day)", input.Period)
	}

	p, err := s.repo.GetCurrentPlan()
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}

	progress, err := s.progress(p, period)
	if err != nil {
		return nil, progressOutput{}, err
	}
	return nil, progress, nil
}

func (s *Server) progress(p *models.Plan, period string) (progressOutput, error) {
	now := s.now()
	since := fitness.WeekStart(now)
	activities, err := s.repo.ListActivities(nil, &since, 0)
	if err != nil {
		return progressOutput{}, fmt.Errorf("failed to list activities: %w", err)
	}

	entries := models.Entries(activities)
	var pr fitness.Progress
	if period == "day" {
		pr = fitness.DailyProgress(p.Working, entries, now)
	} else {
		pr = fitness.WeeklyProgress(p.Working, entries, now)
	}

	return progressOutput{
		Period:         period,
		From:           pr.From.Format(time.RFC3339),
		To:             pr.To.Format(time.RFC3339),
		Sessions:       pr.Sessions,
		Minutes:        pr.Minutes,
		Calories:       pr.Calories,
		Steps:          pr.Steps,
		SessionTarget:  pr.SessionTarget,
		MinuteTarget:   pr.MinuteTarget,
		CalorieTarget:  pr.CalorieTarget,
		SessionPercent: pr.SessionPercent,
		MinutePercent:  pr.MinutePercent,
		CaloriePercent: pr.CaloriePercent,
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, weightOutput, error) {
	if input.WeightKg <= 0 {
		return nil, weightOutput{}, errors.New("weight_kg must be positive")
	}

	m := models.NewBodyMetric(input.WeightKg)
	if input.BodyFatPercent > 0 {
		m.WithBodyFat(input.BodyFatPercent)
	}
	if input.RecordedAt != "" {
		t, err := parseTimestamp(input.RecordedAt)
		if err != nil {
			return nil, weightOutput{}, err
		}
		m.WithRecordedAt(t)
	}
	if input.Notes != "" {
		m.WithNotes(input.Notes)
	}

	if err := s.repo.CreateBodyMetric(m); err != nil {
		return nil, weightOutput{}, fmt.Errorf("failed to log weight: %w", err)
	}

	return nil, weightOutput{
		ID:       m.ID.String()[:8],
		WeightKg: m.WeightKg,
		Message:  fmt.Sprintf("Logged weight: %.1f kg (ID: %s)", m.WeightKg, m.ID.String()[:8]),
	}, nil
}

func parseField(s string) (fitness.RescaleField, error) {
	if s == "" {
		return fitness.RescaleMinutes, nil
	}
	return fitness.ParseRescaleField(strings.ToLower(s))
}

func toScheduleDays(sched fitness.Schedule) []scheduleDay {
	days := make([]scheduleDay, 0, len(sched))
	for _, item := range sched {
		days = append(days, scheduleDay{
			Day:             item.DayOfWeek.String(),
			WorkoutType:     item.WorkoutType,
			DurationMinutes: item.DurationMinutes,
			TimeOfDay:       item.TimeOfDay,
			IsRestDay:       item.IsRestDay,
		})
	}
	return days
}

func toPlanOutput(p *models.Plan) planOutput {
	return planOutput{
		ID:       p.ID.String(),
		Name:     p.DisplayName(),
		Goal:     string(p.Biometrics.FitnessGoal),
		Original: p.Original,
		Working:  p.Working,
		Schedule: toScheduleDays(p.Schedule),
		Overflow: fitness.Overflow(p.Working),
	}
}

func toActivityOutput(a *models.Activity, now time.Time) activityOutput {
	e := a.Entry()
	out := activityOutput{
		ID:              a.ID.String()[:8],
		ActivityType:    a.Type,
		Status:          string(a.Status),
		StartedAt:       a.StartedAt.Format(time.RFC3339),
		DurationMinutes: e.ElapsedMinutes(now),
		Calories:        e.Calories(now),
		Steps:           e.Steps(now),
	}
	if a.Notes != nil {
		out.Notes = *a.Notes
	}
	return out
}
