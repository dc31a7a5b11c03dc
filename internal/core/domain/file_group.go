package domain

import "go.trai.ch/zerr"

// FileSource is an entry accepted by FileGroup.Add: either a PathString or a *File.
type FileSource interface {
	file() *File
}

// PathString is a path that is parsed into a File when added to a group.
type PathString string

func (p PathString) file() *File {
	if p == "" {
		return nil
	}
	return ParseFile(string(p))
}

func (f *File) file() *File { return f }

// Paths converts plain strings into FileSources.
func Paths(paths ...string) []FileSource {
	sources := make([]FileSource, len(paths))
	for i, p := range paths {
		sources[i] = PathString(p)
	}
	return sources
}

// SourceDest is the concatenation descriptor consumed by the task runner.
type SourceDest struct {
	Dest string   `json:"dest" yaml:"dest"`
	Src  []string `json:"src"  yaml:"src"`
}

// FileGroup is an ordered collection of files that optionally compiles into one output file.
// Member order is the concatenation order.
type FileGroup struct {
	Name   string
	files  []*File
	output *File
}

// NewFileGroup creates a group holding the given entries.
func NewFileGroup(entries ...FileSource) *FileGroup {
	return (&FileGroup{}).Add(entries...)
}

// Add appends entries in order. Paths are parsed, files are appended as they are.
// Empty paths and nil files are skipped.
func (g *FileGroup) Add(entries ...FileSource) *FileGroup {
	for _, e := range entries {
		if e == nil {
			continue
		}
		if f := e.file(); f != nil {
			g.files = append(g.files, f)
		}
	}
	return g
}

// AddPaths appends the given path strings.
func (g *FileGroup) AddPaths(paths ...string) *FileGroup {
	return g.Add(Paths(paths...)...)
}

// Len returns the number of members.
func (g *FileGroup) Len() int {
	return len(g.files)
}

// Files returns the members in order. The slice is a copy; the files are not.
func (g *FileGroup) Files() []*File {
	out := make([]*File, len(g.files))
	copy(out, g.files)
	return out
}

// List returns the member paths in order.
func (g *FileGroup) List() []string {
	paths := make([]string, len(g.files))
	for i, f := range g.files {
		paths[i] = f.Path()
	}
	return paths
}

// SetDirectory rewrites the directory of every current member.
// With prepend, members that already have a directory get dir joined in front of it.
func (g *FileGroup) SetDirectory(dir string, prepend bool) *FileGroup {
	for _, f := range g.files {
		if prepend && f.Dir != "" {
			f.Dir = cleanDir(joinNonEmpty("/", dir, f.Dir))
			continue
		}
		f.Dir = cleanDir(dir)
	}
	return g
}

// SetOutputFile sets the file the group compiles into.
// A non-empty dir replaces the directory parsed from name. A name without a
// filename clears the output file, so the group reports it as missing.
func (g *FileGroup) SetOutputFile(name string, dir ...string) *FileGroup {
	g.output = ParseFile(name)
	if g.output.Filename() == "" {
		g.output = nil
		return g
	}
	if len(dir) > 0 && dir[0] != "" {
		g.output.Dir = cleanDir(dir[0])
	}
	return g
}

// OutputFile returns the output file, if one is set.
func (g *FileGroup) OutputFile() (*File, bool) {
	return g.output, g.output != nil
}

// HasOutputFile reports whether an output file is set.
func (g *FileGroup) HasOutputFile() bool {
	return g.output != nil
}

// SourceDestMap returns the concatenation descriptor of the group.
func (g *FileGroup) SourceDestMap() (SourceDest, error) {
	if g.output == nil {
		return SourceDest{}, g.missingOutput()
	}
	return SourceDest{
		Dest: g.output.Path(),
		Src:  g.List(),
	}, nil
}

// SelfMap maps every member's renamed path to its path.
// With a nil fn every member maps onto itself.
func (g *FileGroup) SelfMap(fn FilenameFunc) map[string]string {
	out := make(map[string]string, len(g.files))
	for _, f := range g.files {
		out[f.PathWith(fn)] = f.Path()
	}
	return out
}

// OutputMap maps the output path, optionally renamed by fn, to the member paths.
func (g *FileGroup) OutputMap(fn FilenameFunc) (map[string][]string, error) {
	if g.output == nil {
		return nil, g.missingOutput()
	}
	return map[string][]string{
		g.output.PathWith(fn): g.List(),
	}, nil
}

// Clone returns a deep copy of the group, including the output file.
func (g *FileGroup) Clone() *FileGroup {
	c := &FileGroup{
		Name:  g.Name,
		files: make([]*File, len(g.files)),
	}
	for i, f := range g.files {
		c.files[i] = f.Clone()
	}
	if g.output != nil {
		c.output = g.output.Clone()
	}
	return c
}

func (g *FileGroup) missingOutput() error {
	return zerr.With(zerr.Wrap(ErrMissingOutputFile, "cannot project group"), "group", g.Name)
}
