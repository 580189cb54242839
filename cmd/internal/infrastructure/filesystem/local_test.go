package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactStoreExists(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "signed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "signed", "a.pdf"), []byte("%PDF"), 0o644))

	store := NewArtifactStore(root)
	ctx := context.Background()

	tests := []struct {
		path string
		want bool
	}{
		{"signed/a.pdf", true},
		{"/signed/a.pdf", true},
		{"signed/b.pdf", false},
		{"signed", false},
		{"../outside.pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := store.Exists(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
