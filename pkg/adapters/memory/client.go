package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
)

// Client keeps values in process memory. Used for development and tests.
type Client struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// New creates a new memory storage client
func New() *Client {
	return &Client{
		data: make(map[string][]byte),
	}
}

func (c *Client) Put(ctx context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = clone(data)
	return nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, exists := c.data[key]
	if !exists {
		return nil, interfaces.ErrStorageKeyNotFound
	}
	return clone(data), nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

// Keys returns stored keys. Only for inspection in tests.
func (c *Client) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

func clone(data []byte) []byte {
	dup := make([]byte, len(data))
	copy(dup, data)
	return dup
}

var _ interfaces.StorageAdapter = (*Client)(nil)
