// ABOUTME: Body metric CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for weight and body-fat measurements.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/fitplan/internal/models"
)

const bodyMetricSelect = `
	SELECT id, weight_kg, body_fat_percent, recorded_at, notes, created_at
	FROM body_metrics`

// CreateBodyMetric stores a new body metric in the database.
func (d *DB) CreateBodyMetric(m *models.BodyMetric) error {
	query := `
		INSERT INTO body_metrics (id, weight_kg, body_fat_percent, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.WeightKg,
		m.BodyFatPercent,
		formatTime(m.RecordedAt),
		m.Notes,
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create body metric: %w", err)
	}
	return nil
}

// GetLatestBodyMetric returns the most recently recorded body metric.
func (d *DB) GetLatestBodyMetric() (*models.BodyMetric, error) {
	m, err := scanBodyMetric(d.db.QueryRow(bodyMetricSelect + ` ORDER BY recorded_at DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("body metric")
	}
	return m, err
}

// ListBodyMetrics returns body metrics, most recent first.
func (d *DB) ListBodyMetrics(limit int) ([]*models.BodyMetric, error) {
	query := bodyMetricSelect + ` ORDER BY recorded_at DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*models.BodyMetric
	for rows.Next() {
		m, err := scanBodyMetric(rows)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}
	return metrics, nil
}

// DeleteBodyMetric removes a body metric by ID or prefix.
func (d *DB) DeleteBodyMetric(idOrPrefix string) error {
	id, err := d.resolveID("body_metrics", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete body metric: %w", err)
	}
	if err := d.deleteByID("body_metrics", id, idOrPrefix); err != nil {
		return fmt.Errorf("delete body metric: %w", err)
	}
	return nil
}

func scanBodyMetric(row rowScanner) (*models.BodyMetric, error) {
	var m models.BodyMetric
	var idStr, recordedAt, createdAt string
	var bodyFat sql.NullFloat64
	var notes sql.NullString

	if err := row.Scan(&idStr, &m.WeightKg, &bodyFat, &recordedAt, &notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan body metric: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.RecordedAt = parseTime(recordedAt)
	m.CreatedAt = parseTime(createdAt)
	if bodyFat.Valid {
		m.BodyFatPercent = &bodyFat.Float64
	}
	if notes.Valid {
		m.Notes = &notes.String
	}
	return &m, nil
}
