package fs

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// Config of the file system adapter. Tokens are written here, so both
// modes default to owner-only access.
type Config struct {
	Dir      string
	DirMode  os.FileMode
	FileMode os.FileMode
}

func (c Config) normalize() (Config, error) {
	if c.Dir == "" {
		return c, goerr.New("storage directory is required")
	}

	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return c, goerr.Wrap(err, "invalid storage directory", goerr.V("dir", c.Dir))
	}
	c.Dir = dir

	if c.DirMode == 0 {
		c.DirMode = 0700
	}
	if c.FileMode == 0 {
		c.FileMode = 0600
	}
	return c, nil
}
