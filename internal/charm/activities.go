// ABOUTME: Activity CRUD operations for Charm KV storage.
// ABOUTME: Filtering by type and start time happens client-side after a prefix scan.
package charm

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
)

// CreateActivity stores a new activity in the KV store.
func (c *Client) CreateActivity(a *models.Activity) error {
	data, err := marshalJSON(a)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}
	if err := c.set(ActivityPrefix+a.ID.String(), data); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// UpdateActivity overwrites an existing activity.
func (c *Client) UpdateActivity(a *models.Activity) error {
	key := ActivityPrefix + a.ID.String()
	ok, err := c.exists(key)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if !ok {
		return fmt.Errorf("update activity: %w: %s", storage.ErrNotFound, a.ID)
	}

	data, err := marshalJSON(a)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}
	if err := c.set(key, data); err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

// GetActivity retrieves an activity by ID or ID prefix.
func (c *Client) GetActivity(idOrPrefix string) (*models.Activity, error) {
	data, err := c.getByIDPrefix(ActivityPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	a, err := unmarshalJSON[models.Activity](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal activity: %w", err)
	}
	return a, nil
}

// ListActivities retrieves activities with optional filtering by type and start time.
// Results are sorted by StartedAt descending (most recent first).
func (c *Client) ListActivities(activityType *string, since *time.Time, limit int) ([]*models.Activity, error) {
	allData, err := c.listByPrefix(ActivityPrefix)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	var activities []*models.Activity
	for _, data := range allData {
		a, err := unmarshalJSON[models.Activity](data)
		if err != nil {
			continue
		}
		if activityType != nil && !strings.EqualFold(a.Type, *activityType) {
			continue
		}
		if since != nil && a.StartedAt.Before(*since) {
			continue
		}
		activities = append(activities, a)
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].StartedAt.After(activities[j].StartedAt)
	})

	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// DeleteActivity removes an activity by ID or prefix.
func (c *Client) DeleteActivity(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(ActivityPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}
