package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
)

// ErrInvalidKey is returned for keys that could escape the base directory
var ErrInvalidKey = goerr.New("invalid storage key", goerr.T(apperr.ErrTagInvalidInput))

// Client stores each key as a file below the base directory
type Client struct {
	cfg Config
	mu  sync.RWMutex
}

// New creates the base directory if needed
func New(cfg Config) (*Client, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, cfg.DirMode); err != nil {
		return nil, goerr.Wrap(err, "failed to create storage directory",
			goerr.T(apperr.ErrTagStorage),
			goerr.V("dir", cfg.Dir))
	}

	return &Client{cfg: cfg}, nil
}

func (c *Client) Put(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	filePath := c.filePath(key)
	if err := os.MkdirAll(filepath.Dir(filePath), c.cfg.DirMode); err != nil {
		return goerr.Wrap(err, "failed to create directory",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}

	// Write to a temp file first so a concurrent reader never sees a partial value
	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, c.cfg.FileMode); err != nil {
		return goerr.Wrap(err, "failed to write file",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return goerr.Wrap(err, "failed to rename file",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}

	return nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 - key is validated by validateKey
	data, err := os.ReadFile(c.filePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, interfaces.ErrStorageKeyNotFound
		}
		return nil, goerr.Wrap(err, "failed to read file",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}

	return data, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.filePath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove file",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key))
	}
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return goerr.Wrap(ErrInvalidKey, "key is empty")
	}

	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return goerr.Wrap(ErrInvalidKey, "path traversal", goerr.TV(apperr.StorageKeyKey, key))
	}

	for _, char := range key {
		if char < 32 || char == 127 {
			return goerr.Wrap(ErrInvalidKey, "control character", goerr.TV(apperr.StorageKeyKey, key))
		}
	}

	return nil
}

func (c *Client) filePath(key string) string {
	return filepath.Join(c.cfg.Dir, key)
}

var _ interfaces.StorageAdapter = (*Client)(nil)
