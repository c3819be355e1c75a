// ABOUTME: Plan model pairing a biometric snapshot with its computed and edited targets.
// ABOUTME: Original targets are immutable; Working targets and the Schedule take user edits.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitplan/internal/fitness"
)

// Plan is one generated fitness plan.
type Plan struct {
	ID         uuid.UUID              `json:"id" yaml:"id"`
	Name       string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Biometrics fitness.BiometricInput `json:"biometrics" yaml:"biometrics"`
	Original   fitness.FitnessTargets `json:"original" yaml:"original"`
	Working    fitness.FitnessTargets `json:"working" yaml:"working"`
	Schedule   fitness.Schedule       `json:"schedule" yaml:"schedule"`
	CreatedAt  time.Time              `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at" yaml:"updated_at"`
}

// NewPlan computes targets and a schedule for in and wraps them in a Plan.
func NewPlan(in fitness.BiometricInput) *Plan {
	now := time.Now()
	targets := fitness.ComputeTargets(in, now)
	return &Plan{
		ID:         uuid.New(),
		Biometrics: in,
		Original:   targets,
		Working:    targets.Clone(),
		Schedule:   fitness.GenerateSchedule(targets),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WithName sets a display name.
func (p *Plan) WithName(name string) *Plan {
	p.Name = name
	return p
}

// Rescale sets a new weekly total for minutes or sessions, redistributing it
// proportionally to the original split.
func (p *Plan) Rescale(newTotal int, field fitness.RescaleField) {
	p.Working = fitness.ApplyTotal(p.Original, p.Working, newTotal, field)
	p.touch()
}

// EditDistribution overwrites one cell of the working distribution.
func (p *Plan) EditDistribution(index int, field fitness.RescaleField, value int) error {
	working, err := fitness.EditDistribution(p.Working, index, field, value)
	if err != nil {
		return err
	}
	p.Working = working
	p.touch()
	return nil
}

// RegenerateSchedule rebuilds the schedule from the working targets,
// discarding manual schedule edits.
func (p *Plan) RegenerateSchedule() {
	p.Schedule = fitness.GenerateSchedule(p.Working)
	p.touch()
}

// Reset restores the working targets and schedule to the computed originals.
func (p *Plan) Reset() {
	p.Working = p.Original.Clone()
	p.Schedule = fitness.GenerateSchedule(p.Original)
	p.touch()
}

// Touch records a modification made through the schedule editors.
func (p *Plan) Touch() {
	p.touch()
}

func (p *Plan) touch() {
	p.UpdatedAt = time.Now()
}

// DisplayName returns the name, or a label derived from the goal.
func (p *Plan) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return string(p.Biometrics.FitnessGoal) + " plan"
}
