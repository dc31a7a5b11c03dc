package domain

import "strings"

// FilenameFunc computes the filename portion of a file's path.
// It is used to derive sibling names, such as the minified variant, without
// changing the file itself.
type FilenameFunc func(f *File) string

// File is a single file reference decomposed into directory, basename and extension.
// An empty Dir or Ext means the part is absent.
type File struct {
	Dir      string
	Basename string
	Ext      string
}

// ParseFile decomposes a slash separated path.
//
// The text after the last '.' of the final segment is the extension, so ".env"
// has an empty basename and the extension "env". A path directly below the root
// has the directory "/". An empty path yields an empty File whose Path is "".
func ParseFile(path string) *File {
	f := &File{}
	f.parse(path)
	return f
}

// Set re-parses the file from path. An empty path leaves the file unchanged.
func (f *File) Set(path string) *File {
	f.parse(path)
	return f
}

func (f *File) parse(path string) {
	if path == "" {
		return
	}

	dir, name := "", path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		dir, name = path[:i], path[i+1:]
		if dir == "" {
			dir = "/"
		}
	}

	base, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		base, ext = name[:i], name[i+1:]
	}

	f.Dir = cleanDir(dir)
	f.Basename = base
	f.Ext = ext
}

// Filename returns the basename joined with the extension.
func (f *File) Filename() string {
	return withExt(f.Basename, f.Ext)
}

// Path returns the directory and filename joined with '/'.
func (f *File) Path() string {
	return f.PathWith(nil)
}

// PathWith is like Path but lets fn compute the filename. The directory still applies.
func (f *File) PathWith(fn FilenameFunc) string {
	name := f.Filename()
	if fn != nil {
		name = fn(f)
	}
	if f.Dir == "/" {
		return "/" + name
	}
	return joinNonEmpty("/", f.Dir, name)
}

// Minified returns the filename with "min" inserted before the extension.
func (f *File) Minified() string {
	return withExt(f.Basename+".min", f.Ext)
}

// Segments returns the directory split on '/'. It is nil when there is no directory.
func (f *File) Segments() []string {
	if f.Dir == "" {
		return nil
	}
	return strings.Split(f.Dir, "/")
}

// Segment returns the n-th directory segment, or false when out of range.
func (f *File) Segment(n int) (string, bool) {
	segments := f.Segments()
	if n < 0 || n >= len(segments) || segments[n] == "" {
		return "", false
	}
	return segments[n], true
}

// Clone returns an independent copy with the same path.
func (f *File) Clone() *File {
	return ParseFile(f.Path())
}

// String implements fmt.Stringer.
func (f *File) String() string {
	return f.Path()
}

// MinifiedName is a FilenameFunc that maps every file to its minified filename.
func MinifiedName(f *File) string {
	return f.Minified()
}

// WithExtension returns a FilenameFunc that swaps the extension for ext.
func WithExtension(ext string) FilenameFunc {
	return func(f *File) string {
		return withExt(f.Basename, ext)
	}
}

// withExt dot-joins base and ext. The dot is written whenever ext is present,
// so an empty base keeps hidden-file names like ".env" intact.
func withExt(base, ext string) string {
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// cleanDir collapses repeated separators and drops a trailing one.
// A leading separator is kept so absolute directories stay absolute; the root is "/".
func cleanDir(dir string) string {
	if dir == "" {
		return ""
	}
	prefix := ""
	if strings.HasPrefix(dir, "/") {
		prefix = "/"
	}
	rest := joinNonEmpty("/", strings.Split(dir, "/")...)
	if rest == "" {
		return prefix
	}
	return prefix + rest
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
