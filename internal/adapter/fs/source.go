package fs

import (
	"context"
	"os"
	"path/filepath"
)

// FileSource reads document content from the local filesystem. Relative
// paths are resolved against BaseDir.
type FileSource struct {
	BaseDir string
}

func NewFileSource(baseDir string) *FileSource {
	return &FileSource{BaseDir: baseDir}
}

// Resolve returns the filesystem location of a catalog path.
func (s *FileSource) Resolve(path string) string {
	if filepath.IsAbs(path) || s.BaseDir == "" {
		return path
	}
	return filepath.Join(s.BaseDir, path)
}

func (s *FileSource) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Resolve(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
