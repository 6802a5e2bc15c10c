package cache

import (
	"context"
	"os"
	"path/filepath"
)

// FileCache stores each entry as a file in a directory, named by its key.
// Keys produced by Key are filesystem-safe hex strings.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory, creating
// the directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a cached value.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value. The write goes through a temporary file and a rename
// so interrupted writes never leave a truncated entry behind.
func (c *FileCache) Set(ctx context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(c.dir, key+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path(key))
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
