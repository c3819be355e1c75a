// ABOUTME: Activity CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for logged and live activities.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitplan/internal/fitness"
	"github.com/harperreed/fitplan/internal/models"
)

const activitySelect = `
	SELECT id, activity_type, status, started_at, ended_at, duration_minutes, weight_kg, calories, steps, notes, created_at
	FROM activities`

// CreateActivity stores a new activity in the database.
func (d *DB) CreateActivity(a *models.Activity) error {
	query := `
		INSERT INTO activities (id, activity_type, status, started_at, ended_at, duration_minutes, weight_kg, calories, steps, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		a.ID.String(),
		a.Type,
		string(a.Status),
		formatTime(a.StartedAt),
		formatTimePtr(a.EndedAt),
		a.DurationMinutes,
		a.WeightKg,
		a.Calories,
		a.Steps,
		a.Notes,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// UpdateActivity overwrites the mutable fields of a stored activity.
func (d *DB) UpdateActivity(a *models.Activity) error {
	query := `
		UPDATE activities
		SET activity_type = ?, status = ?, started_at = ?, ended_at = ?, duration_minutes = ?,
			weight_kg = ?, calories = ?, steps = ?, notes = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		a.Type,
		string(a.Status),
		formatTime(a.StartedAt),
		formatTimePtr(a.EndedAt),
		a.DurationMinutes,
		a.WeightKg,
		a.Calories,
		a.Steps,
		a.Notes,
		a.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update activity: %w", notFound(a.ID.String()))
	}
	return nil
}

// GetActivity retrieves an activity by ID or ID prefix.
func (d *DB) GetActivity(idOrPrefix string) (*models.Activity, error) {
	id, err := d.resolveID("activities", idOrPrefix)
	if err != nil {
		return nil, err
	}

	a, err := scanActivity(d.db.QueryRow(activitySelect+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(idOrPrefix)
	}
	return a, err
}

// ListActivities retrieves activities with optional filtering by type and start time.
// Results are sorted by StartedAt descending (most recent first).
func (d *DB) ListActivities(activityType *string, since *time.Time, limit int) ([]*models.Activity, error) {
	var where []string
	var args []any

	if activityType != nil {
		where = append(where, "LOWER(activity_type) = LOWER(?)")
		args = append(args, *activityType)
	}
	if since != nil {
		where = append(where, "started_at >= ?")
		args = append(args, formatTime(*since))
	}

	query := activitySelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY started_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// DeleteActivity removes an activity by ID or prefix.
func (d *DB) DeleteActivity(idOrPrefix string) error {
	id, err := d.resolveID("activities", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if err := d.deleteByID("activities", id, idOrPrefix); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	var a models.Activity
	var idStr, status, startedAt, createdAt string
	var endedAt, notes sql.NullString

	err := row.Scan(&idStr, &a.Type, &status, &startedAt, &endedAt, &a.DurationMinutes,
		&a.WeightKg, &a.Calories, &a.Steps, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}

	a.ID, _ = uuid.Parse(idStr)
	a.Status = fitness.ActivityStatus(status)
	a.StartedAt = parseTime(startedAt)
	a.CreatedAt = parseTime(createdAt)
	if endedAt.Valid {
		t := parseTime(endedAt.String)
		a.EndedAt = &t
	}
	if notes.Valid {
		a.Notes = &notes.String
	}
	return &a, nil
}
