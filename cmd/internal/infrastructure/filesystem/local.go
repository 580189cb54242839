package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore looks documents up below a root directory. Stored paths are
// always taken relative to the root, even when they start with a slash.
type ArtifactStore struct {
	root string
}

func NewArtifactStore(root string) *ArtifactStore {
	if root == "" {
		root = "."
	}
	return &ArtifactStore{root: root}
}

func (s *ArtifactStore) Exists(_ context.Context, path string) (bool, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(path, "/")))
	if rel == "." || !filepath.IsLocal(rel) {
		return false, nil
	}

	info, err := os.Stat(filepath.Join(s.root, rel))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
