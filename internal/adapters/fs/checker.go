package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceChecker = (*Checker)(nil)

// Checker verifies member paths against the filesystem. Paths may be glob patterns.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Missing returns, in input order, the paths that match no file.
// Relative paths are resolved against root.
func (c *Checker) Missing(root string, paths []string) ([]string, error) {
	fsys := os.DirFS(root)

	var missing []string
	for _, p := range paths {
		matches, err := c.glob(fsys, root, p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", p)
		}
		if len(matches) == 0 {
			missing = append(missing, p)
		}
	}
	return missing, nil
}

func (c *Checker) glob(fsys iofs.FS, root, p string) ([]string, error) {
	if iofs.ValidPath(p) {
		return doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
	}
	// Absolute paths and paths climbing out of root cannot be expressed on fsys.
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, filepath.FromSlash(p))
	}
	return doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
}
