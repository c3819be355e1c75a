// ABOUTME: Plan CRUD operations for SQLite storage.
// ABOUTME: Targets are stored as JSON columns; the schedule lives in schedule_items rows.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
)

// SavePlan inserts a plan or replaces the stored copy, schedule included.
func (d *DB) SavePlan(p *models.Plan) error {
	biometrics, err := json.Marshal(p.Biometrics)
	if err != nil {
		return fmt.Errorf("marshal biometrics: %w", err)
	}
	original, err := json.Marshal(p.Original)
	if err != nil {
		return fmt.Errorf("marshal original targets: %w", err)
	}
	working, err := json.Marshal(p.Working)
	if err != nil {
		return fmt.Errorf("marshal working targets: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO plans (id, name, fitness_goal, biometrics, original_targets, working_targets, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			fitness_goal = excluded.fitness_goal,
			biometrics = excluded.biometrics,
			original_targets = excluded.original_targets,
			working_targets = excluded.working_targets,
			updated_at = excluded.updated_at
	`,
		p.ID.String(),
		p.Name,
		string(p.Biometrics.FitnessGoal),
		string(biometrics),
		string(original),
		string(working),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}

	for _, item := range p.Schedule {
		_, err = tx.Exec(`
			INSERT INTO schedule_items (plan_id, day_of_week, workout_type, duration_minutes, time_of_day, is_rest_day)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(plan_id, day_of_week) DO UPDATE SET
				workout_type = excluded.workout_type,
				duration_minutes = excluded.duration_minutes,
				time_of_day = excluded.time_of_day,
				is_rest_day = excluded.is_rest_day
		`,
			p.ID.String(),
			int(item.DayOfWeek),
			item.WorkoutType,
			item.DurationMinutes,
			item.TimeOfDay,
			item.IsRestDay,
		)
		if err != nil {
			return fmt.Errorf("save schedule item %s: %w", item.DayOfWeek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a plan by ID or ID prefix.
func (d *DB) GetPlan(idOrPrefix string) (*models.Plan, error) {
	id, err := d.resolveID("plans", idOrPrefix)
	if err != nil {
		return nil, err
	}

	p, err := d.scanPlan(d.db.QueryRow(planSelect+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(idOrPrefix)
	}
	if err != nil {
		return nil, err
	}
	if err := d.loadSchedule(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetCurrentPlan returns the most recently updated plan.
func (d *DB) GetCurrentPlan() (*models.Plan, error) {
	p, err := d.scanPlan(d.db.QueryRow(planSelect + ` ORDER BY updated_at DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoPlan
	}
	if err != nil {
		return nil, err
	}
	if err := d.loadSchedule(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPlans returns every plan, most recently updated first.
func (d *DB) ListPlans() ([]*models.Plan, error) {
	rows, err := d.db.Query(planSelect + ` ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		p, err := d.scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	for _, p := range plans {
		if err := d.loadSchedule(p); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

// DeletePlan removes a plan and its schedule (cascade delete).
func (d *DB) DeletePlan(idOrPrefix string) error {
	id, err := d.resolveID("plans", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if err := d.deleteByID("plans", id, idOrPrefix); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

const planSelect = `
	SELECT id, name, biometrics, original_targets, working_targets, created_at, updated_at
	FROM plans`

type rowScanner interface {
	Scan(dest ...any) error
}

func (d *DB) scanPlan(row rowScanner) (*models.Plan, error) {
	var p models.Plan
	var idStr, biometrics, original, working, createdAt, updatedAt string
	var name sql.NullString

	if err := row.Scan(&idStr, &name, &biometrics, &original, &working, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}

	p.ID, _ = uuid.Parse(idStr)
	p.Name = name.String
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	if err := json.Unmarshal([]byte(biometrics), &p.Biometrics); err != nil {
		return nil, fmt.Errorf("unmarshal biometrics: %w", err)
	}
	if err := json.Unmarshal([]byte(original), &p.Original); err != nil {
		return nil, fmt.Errorf("unmarshal original targets: %w", err)
	}
	if err := json.Unmarshal([]byte(working), &p.Working); err != nil {
		return nil, fmt.Errorf("unmarshal working targets: %w", err)
	}
	return &p, nil
}

// loadSchedule fills p.Schedule. Days without a stored row become rest days.
func (d *DB) loadSchedule(p *models.Plan) error {
	for i := range p.Schedule {
		p.Schedule[i] = fitness.ScheduleItem{
			DayOfWeek: fitness.Weekday(i),
			TimeOfDay: fitness.DefaultTimeOfDay,
			IsRestDay: true,
		}
	}

	rows, err := d.db.Query(`
		SELECT day_of_week, workout_type, duration_minutes, time_of_day, is_rest_day
		FROM schedule_items
		WHERE plan_id = ?
		ORDER BY day_of_week
	`, p.ID.String())
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item fitness.ScheduleItem
		var day int
		var workoutType sql.NullString
		if err := rows.Scan(&day, &workoutType, &item.DurationMinutes, &item.TimeOfDay, &item.IsRestDay); err != nil {
			return fmt.Errorf("scan schedule item: %w", err)
		}
		if day < 0 || day >= fitness.DaysPerWeek {
			continue
		}
		item.DayOfWeek = fitness.Weekday(day)
		item.WorkoutType = workoutType.String
		p.Schedule[day] = item
	}
	return rows.Err()
}
