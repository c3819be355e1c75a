// ABOUTME: Export and import functionality for fitplan data.
// ABOUTME: Supports JSON, YAML, and a Markdown report of the current plan and recent activity.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
	"gopkg.in/yaml.v3"
)

const exportVersion = "1.0"

// ExportData represents the full export format for fitplan data.
type ExportData struct {
	Version     string               `json:"version" yaml:"version"`
	ExportedAt  time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool        string               `json:"tool" yaml:"tool"`
	Plans       []*models.Plan       `json:"plans" yaml:"plans"`
	Activities  []*models.Activity   `json:"activities" yaml:"activities"`
	BodyMetrics []*models.BodyMetric `json:"body_metrics" yaml:"body_metrics"`
}

// CollectAll builds an ExportData from any repository.
func CollectAll(r Repository) (*ExportData, error) {
	plans, err := r.ListPlans()
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	activities, err := r.ListActivities(nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	metrics, err := r.ListBodyMetrics(0)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}

	return &ExportData{
		Version:     exportVersion,
		ExportedAt:  time.Now(),
		Tool:        "fitplan",
		Plans:       plans,
		Activities:  activities,
		BodyMetrics: metrics,
	}, nil
}

// ImportAll writes every record of data into r.
func ImportAll(r Repository, data *ExportData) error {
	for _, p := range data.Plans {
		if err := r.SavePlan(p); err != nil {
			return fmt.Errorf("import plan: %w", err)
		}
	}
	for _, a := range data.Activities {
		if err := r.CreateActivity(a); err != nil {
			return fmt.Errorf("import activity: %w", err)
		}
	}
	for _, m := range data.BodyMetrics {
		if err := r.CreateBodyMetric(m); err != nil {
			return fmt.Errorf("import body metric: %w", err)
		}
	}
	return nil
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	return CollectAll(d)
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	return ImportAll(d, data)
}

// ExportJSON exports all data as JSON.
func ExportJSON(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func ExportYAML(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(r Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return r.ImportData(&exportData)
}

// ImportYAML imports data from YAML bytes.
func ImportYAML(r Repository, data []byte) error {
	var exportData ExportData
	if err := yaml.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal YAML: %w", err)
	}
	return r.ImportData(&exportData)
}

// ExportMarkdown renders the current plan, its schedule, and activities
// started at or after since (all activities when since is nil).
func ExportMarkdown(r Repository, since *time.Time) (string, error) {
	var sb strings.Builder
	now := time.Now()

	fmt.Fprintf(&sb, "# Fitness Plan - %s\n\n", now.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format(time.RFC3339))

	plan, err := r.GetCurrentPlan()
	switch {
	case errors.Is(err, ErrNoPlan):
		sb.WriteString("_No plan yet._\n\n")
	case err != nil:
		return "", err
	default:
		writePlanMarkdown(&sb, plan)
	}

	activities, err := r.ListActivities(nil, since, 0)
	if err != nil {
		return "", err
	}
	if len(activities) > 0 {
		sb.WriteString("## Activities\n\n")
		sb.WriteString("| Date | Type | Duration | Calories | Steps | Notes |\n")
		sb.WriteString("|------|------|----------|----------|-------|-------|\n")
		for _, a := range activities {
			duration := fmt.Sprintf("%.0f min", a.Entry().ElapsedMinutes(now))
			if a.IsRunning() {
				duration += " (running)"
			}
			notes := ""
			if a.Notes != nil {
				notes = *a.Notes
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %d | %d | %s |\n",
				a.StartedAt.Local().Format("2006-01-02 15:04"),
				a.Type, duration, a.Calories, a.Steps, notes)
		}
		sb.WriteString("\n")
	}

	metrics, err := r.ListBodyMetrics(0)
	if err != nil {
		return "", err
	}
	if len(metrics) > 0 {
		sb.WriteString("## Weight\n\n")
		sb.WriteString("| Date | Weight | Body fat |\n")
		sb.WriteString("|------|--------|----------|\n")
		for _, m := range metrics {
			bodyFat := ""
			if m.BodyFatPercent != nil {
				bodyFat = fmt.Sprintf("%.1f%%", *m.BodyFatPercent)
			}
			fmt.Fprintf(&sb, "| %s | %.1f kg | %s |\n",
				m.RecordedAt.Local().Format("2006-01-02 15:04"), m.WeightKg, bodyFat)
		}
	}

	return sb.String(), nil
}

func writePlanMarkdown(sb *strings.Builder, p *models.Plan) {
	t := p.Working
	fmt.Fprintf(sb, "## %s\n\n", p.DisplayName())
	fmt.Fprintf(sb, "- Weekly calorie burn: %d kcal\n", t.WeeklyCalorieBurnTarget)
	fmt.Fprintf(sb, "- Weekly workouts: %d sessions, %d minutes\n", t.WeeklyWorkoutFrequencyTarget, t.WeeklyWorkoutMinutes)
	fmt.Fprintf(sb, "- Daily move: %d kcal\n", t.DailyMoveTarget)
	fmt.Fprintf(sb, "- Daily exercise: %d min\n\n", t.DailyExerciseTarget)

	sb.WriteString("| Workout | Sessions | Minutes |\n")
	sb.WriteString("|---------|----------|---------|\n")
	for _, d := range t.WorkoutTypeDistribution {
		fmt.Fprintf(sb, "| %s | %d | %d |\n", d.WorkoutType, d.WeeklySessions, d.WeeklyMinutes)
	}
	sb.WriteString("\n### Schedule\n\n")
	sb.WriteString("| Day | Time | Workout |\n")
	sb.WriteString("|-----|------|---------|\n")
	for _, item := range p.Schedule {
		fmt.Fprintf(sb, "| %s | %s | %s |\n", item.DayOfWeek, item.TimeOfDay, describeItem(item))
	}
	sb.WriteString("\n")
}

func describeItem(item fitness.ScheduleItem) string {
	if item.IsRestDay {
		return "Rest"
	}
	return fmt.Sprintf("%s (%d min)", item.WorkoutType, item.DurationMinutes)
}
