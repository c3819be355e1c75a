// ABOUTME: Body metric CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side sorting.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
)

// CreateBodyMetric stores a new body metric in the KV store.
func (c *Client) CreateBodyMetric(m *models.BodyMetric) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal body metric: %w", err)
	}
	if err := c.set(BodyMetricPrefix+m.ID.String(), data); err != nil {
		return fmt.Errorf("create body metric: %w", err)
	}
	return nil
}

// GetLatestBodyMetric returns the most recently recorded body metric.
func (c *Client) GetLatestBodyMetric() (*models.BodyMetric, error) {
	metrics, err := c.ListBodyMetrics(1)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, fmt.Errorf("%w: body metric", storage.ErrNotFound)
	}
	return metrics[0], nil
}

// ListBodyMetrics returns body metrics, most recent first.
func (c *Client) ListBodyMetrics(limit int) ([]*models.BodyMetric, error) {
	allData, err := c.listByPrefix(BodyMetricPrefix)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}

	var metrics []*models.BodyMetric
	for _, data := range allData {
		m, err := unmarshalJSON[models.BodyMetric](data)
		if err != nil {
			continue
		}
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].RecordedAt.After(metrics[j].RecordedAt)
	})

	if limit > 0 && len(metrics) > limit {
		metrics = metrics[:limit]
	}
	return metrics, nil
}

// DeleteBodyMetric removes a body metric by ID or prefix.
func (c *Client) DeleteBodyMetric(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(BodyMetricPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete body metric: %w", err)
	}
	return nil
}
