package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileGateway stores each collection as a JSON file inside a data directory.
// Writes go through a temp file and rename so a crash mid-write leaves the
// previous payload intact.
type FileGateway struct {
	dir string
}

// NewFileGateway creates the data directory if needed and returns a gateway
// rooted at it.
func NewFileGateway(dir string) (*FileGateway, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileGateway{dir: dir}, nil
}

func (g *FileGateway) path(key string) string {
	return filepath.Join(g.dir, key+".json")
}

// Save writes the payload for key, replacing any previous contents.
func (g *FileGateway) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(g.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, g.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Load reads the payload for key. A key that has never been written returns
// (nil, nil).
func (g *FileGateway) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(g.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Close is a no-op for the file backend.
func (g *FileGateway) Close(_ context.Context) error {
	return nil
}
