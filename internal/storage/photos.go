package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
)

// LocalPhotoStore keeps profile photos in a directory on local disk.
type LocalPhotoStore struct {
	dir    string
	create func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewLocalPhotoStore creates dir if needed and returns a store rooted at it.
func NewLocalPhotoStore(dir string) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &LocalPhotoStore{dir: dir, create: createFile}, nil
}

// Save writes content to {dir}/{parentID}_{base name of filename}, replacing
// any previous photo with the same name, and returns that path.
func (s *LocalPhotoStore) Save(ctx context.Context, parentID int64, filename string, content io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean("/" + filename))
	if name == "/" || name == "." {
		name = "photo"
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%d_%s", parentID, name))

	f, err := s.create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}

	n, err := io.Copy(f, content)
	if err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	// A failed close can mean the data never reached disk.
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close photo file: %w", err)
	}

	logger.Log.Infow("profile photo stored", "parent_id", parentID, "path", path, "bytes", n)
	return path, nil
}
