// ABOUTME: Repository interface for fitplan data storage.
// ABOUTME: Defines the contract for plans, activities, and body metrics plus shared sentinel errors.
package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fitplan/internal/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAmbiguousPrefix = errors.New("ambiguous prefix")
	ErrNoPlan          = errors.New("no plan yet, run 'fitplan plan create' first")
	ErrReadOnly        = errors.New("cannot write: database is locked by another process (MCP server?)")
)

// Repository defines the storage interface for fitplan data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Plan operations. SavePlan inserts or replaces.
	SavePlan(p *models.Plan) error
	GetPlan(idOrPrefix string) (*models.Plan, error)
	GetCurrentPlan() (*models.Plan, error)
	ListPlans() ([]*models.Plan, error)
	DeletePlan(idOrPrefix string) error

	// Activity operations
	CreateActivity(a *models.Activity) error
	UpdateActivity(a *models.Activity) error
	GetActivity(idOrPrefix string) (*models.Activity, error)
	ListActivities(activityType *string, since *time.Time, limit int) ([]*models.Activity, error)
	DeleteActivity(idOrPrefix string) error

	// Body metric operations
	CreateBodyMetric(m *models.BodyMetric) error
	GetLatestBodyMetric() (*models.BodyMetric, error)
	ListBodyMetrics(limit int) ([]*models.BodyMetric, error)
	DeleteBodyMetric(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

func notFound(idOrPrefix string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
}

func ambiguous(idOrPrefix string) error {
	return fmt.Errorf("%w %s: matches multiple records", ErrAmbiguousPrefix, idOrPrefix)
}
