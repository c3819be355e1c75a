// ABOUTME: Charm KV client wrapper for fitplan storage.
// ABOUTME: Provides thread-safe initialization, badger prefix scans, and automatic cloud sync.
package charm

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fitplan/internal/storage"
)

const (
	dbName    = "fitplan"
	charmHost = "charm.2389.dev"

	PlanPrefix       = "plan:"
	ActivityPrefix   = "activity:"
	BodyMetricPrefix = "body_metric:"
)

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

// store is the subset of the Charm KV API the client relies on.
type store interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	View(fn func(txn *badger.Txn) error) error
	Sync() error
	Reset() error
	IsReadOnly() bool
	Close() error
}

// Client stores fitplan records in Charm KV and implements storage.Repository.
type Client struct {
	kv       store
	autoSync bool
	mu       sync.RWMutex
}

var _ storage.Repository = (*Client)(nil)

// InitClient initializes the global Charm client.
// Thread-safe; can be called multiple times.
func InitClient() (*Client, error) {
	clientOnce.Do(func() {
		if os.Getenv("CHARM_HOST") == "" {
			if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
				clientErr = err
				return
			}
		}

		db, err := kv.OpenWithDefaultsFallback(dbName)
		if err != nil {
			clientErr = err
			return
		}

		globalClient = newClient(db, true)

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})

	return globalClient, clientErr
}

// GetClient returns the global client, initializing if needed.
func GetClient() (*Client, error) {
	return InitClient()
}

func newClient(s store, autoSync bool) *Client {
	return &Client{kv: s, autoSync: autoSync}
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

func (c *Client) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// set stores a value with the given key.
func (c *Client) set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return storage.ErrReadOnly
	}

	if err := c.kv.Set([]byte(key), data); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// delete removes a key.
func (c *Client) delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return storage.ErrReadOnly
	}

	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// exists reports whether key is present.
func (c *Client) exists(key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// scan calls fn for every key/value pair under prefix, in key order.
func (c *Client) scan(prefix string, fn func(key string, val []byte) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := []byte(prefix)
	return c.kv.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = p
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(string(item.KeyCopy(nil)), val); err != nil {
				return err
			}
		}
		return nil
	})
}

// listByPrefix returns all values with keys matching the given prefix.
func (c *Client) listByPrefix(prefix string) ([][]byte, error) {
	var results [][]byte
	err := c.scan(prefix, func(_ string, val []byte) error {
		results = append(results, val)
		return nil
	})
	return results, err
}

// resolveKey finds the single full key under typePrefix whose ID starts with idPrefix.
func (c *Client) resolveKey(typePrefix, idPrefix string) (string, error) {
	var matches []string
	err := c.scan(typePrefix+idPrefix, func(key string, _ []byte) error {
		matches = append(matches, key)
		if len(matches) > 1 {
			return errStopScan
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", storage.ErrNotFound, idPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%w %s: matches multiple records", storage.ErrAmbiguousPrefix, idPrefix)
	}
	return matches[0], nil
}

var errStopScan = errors.New("stop scan")

// getByIDPrefix retrieves a single value by ID prefix match.
func (c *Client) getByIDPrefix(typePrefix, idPrefix string) ([]byte, error) {
	key, err := c.resolveKey(typePrefix, idPrefix)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Get([]byte(key))
}

// deleteByIDPrefix deletes a record by ID prefix match.
func (c *Client) deleteByIDPrefix(typePrefix, idPrefix string) error {
	key, err := c.resolveKey(typePrefix, idPrefix)
	if err != nil {
		return err
	}
	return c.delete(key)
}

func unmarshalJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func marshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
