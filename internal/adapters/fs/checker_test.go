package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/fs"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}
}

func TestChecker_Missing(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"resources/js/lib/jquery.js",
		"resources/js/src/app.js",
		"resources/js/src/nested/widget.js",
	)

	checker := fs.NewChecker()

	tests := []struct {
		name    string
		paths   []string
		missing []string
	}{
		{
			name:  "all present",
			paths: []string{"resources/js/lib/jquery.js", "resources/js/src/app.js"},
		},
		{
			name:    "missing files keep input order",
			paths:   []string{"b.js", "resources/js/src/app.js", "a.js"},
			missing: []string{"b.js", "a.js"},
		},
		{
			name:  "glob patterns",
			paths: []string{"resources/js/**/*.js", "resources/js/src/*.js"},
		},
		{
			name:    "unmatched glob",
			paths:   []string{"resources/**/*.scss"},
			missing: []string{"resources/**/*.scss"},
		},
		{
			name:    "directories do not count as files",
			paths:   []string{"resources/js/lib"},
			missing: []string{"resources/js/lib"},
		},
		{
			name:  "absolute path",
			paths: []string{filepath.ToSlash(filepath.Join(root, "resources/js/src/app.js"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, err := checker.Missing(root, tt.paths)
			require.NoError(t, err)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestChecker_Missing_ParentRelative(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, "shared/vendor.js")
	root := filepath.Join(base, "site")
	require.NoError(t, os.MkdirAll(root, 0o750))

	missing, err := fs.NewChecker().Missing(root, []string{"../shared/vendor.js", "../shared/other.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"../shared/other.js"}, missing)
}

func TestChecker_Missing_BadPattern(t *testing.T) {
	_, err := fs.NewChecker().Missing(t.TempDir(), []string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}
