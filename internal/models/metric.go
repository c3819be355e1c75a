// ABOUTME: BodyMetric model for weight and body-fat measurements.
// ABOUTME: The latest weight feeds calorie estimates for new activities.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyMetric represents a single body measurement.
type BodyMetric struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	WeightKg       float64   `json:"weight_kg" yaml:"weight_kg"`
	BodyFatPercent *float64  `json:"body_fat_percent,omitempty" yaml:"body_fat_percent,omitempty"`
	RecordedAt     time.Time `json:"recorded_at" yaml:"recorded_at"`
	Notes          *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

// NewBodyMetric creates a new BodyMetric with generated UUID and current timestamp.
func NewBodyMetric(weightKg float64) *BodyMetric {
	now := time.Now()
	return &BodyMetric{
		ID:         uuid.New(),
		WeightKg:   weightKg,
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithBodyFat sets the body-fat percentage.
func (m *BodyMetric) WithBodyFat(percent float64) *BodyMetric {
	m.BodyFatPercent = &percent
	return m
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (m *BodyMetric) WithRecordedAt(t time.Time) *BodyMetric {
	m.RecordedAt = t
	return m
}

// WithNotes sets notes on the metric.
func (m *BodyMetric) WithNotes(notes string) *BodyMetric {
	m.Notes = &notes
	return m
}
