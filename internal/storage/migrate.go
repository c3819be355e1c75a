// ABOUTME: Data migration between fitplan storage backends.
// ABOUTME: Copies plans, activities, and body metrics from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Plans       int
	Activities  int
	BodyMetrics int
}

// MigrateData copies all data from src to dst storage. The destination
// should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	plans, err := src.ListPlans()
	if err != nil {
		return nil, fmt.Errorf("list source plans: %w", err)
	}
	for _, p := range plans {
		if err := dst.SavePlan(p); err != nil {
			return nil, fmt.Errorf("save plan %s: %w", p.ID, err)
		}
		summary.Plans++
	}

	activities, err := src.ListActivities(nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list source activities: %w", err)
	}
	for _, a := range activities {
		if err := dst.CreateActivity(a); err != nil {
			return nil, fmt.Errorf("create activity %s: %w", a.ID, err)
		}
		summary.Activities++
	}

	metrics, err := src.ListBodyMetrics(0)
	if err != nil {
		return nil, fmt.Errorf("list source body metrics: %w", err)
	}
	for _, m := range metrics {
		if err := dst.CreateBodyMetric(m); err != nil {
			return nil, fmt.Errorf("create body metric %s: %w", m.ID, err)
		}
		summary.BodyMetrics++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
