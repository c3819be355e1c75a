// ABOUTME: Bulk export, import, and record counts for the Charm KV backend.
// ABOUTME: Counts come from key-only badger scans so sync status stays cheap.
package charm

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fitplan/internal/storage"
)

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	return storage.CollectAll(c)
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	return storage.ImportAll(c, data)
}

// Stats holds per-type record counts.
type Stats struct {
	Plans       int
	Activities  int
	BodyMetrics int
}

// Stats counts stored records without decoding their values.
func (c *Client) Stats() (Stats, error) {
	var s Stats
	for prefix, n := range map[string]*int{
		PlanPrefix:       &s.Plans,
		ActivityPrefix:   &s.Activities,
		BodyMetricPrefix: &s.BodyMetrics,
	} {
		count, err := c.countKeys(prefix)
		if err != nil {
			return Stats{}, err
		}
		*n = count
	}
	return s, nil
}

func (c *Client) countKeys(prefix string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := []byte(prefix)
	count := 0
	err := c.kv.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = p
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
