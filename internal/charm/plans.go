// ABOUTME: Plan CRUD operations for Charm KV storage.
// ABOUTME: Plans are stored whole as JSON under plan:<uuid> keys.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/fitplan/internal/models"
	"github.com/harperreed/fitplan/internal/storage"
)

// SavePlan inserts or replaces a plan.
func (c *Client) SavePlan(p *models.Plan) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := c.set(PlanPrefix+p.ID.String(), data); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a plan by ID or ID prefix.
func (c *Client) GetPlan(idOrPrefix string) (*models.Plan, error) {
	data, err := c.getByIDPrefix(PlanPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	p, err := unmarshalJSON[models.Plan](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return p, nil
}

// GetCurrentPlan returns the most recently updated plan.
func (c *Client) GetCurrentPlan() (*models.Plan, error) {
	plans, err := c.ListPlans()
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, storage.ErrNoPlan
	}
	return plans[0], nil
}

// ListPlans returns every plan, most recently updated first.
func (c *Client) ListPlans() ([]*models.Plan, error) {
	allData, err := c.listByPrefix(PlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	var plans []*models.Plan
	for _, data := range allData {
		p, err := unmarshalJSON[models.Plan](data)
		if err != nil {
			continue
		}
		plans = append(plans, p)
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].UpdatedAt.After(plans[j].UpdatedAt)
	})
	return plans, nil
}

// DeletePlan removes a plan by ID or prefix.
func (c *Client) DeletePlan(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(PlanPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
