package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// NamedPath is a declared path and its resolved value.
type NamedPath struct {
	Name  string
	Value string
}

// GroupOptions are applied to a group after files are added to it.
// Both values are path templates resolved against the configuration's paths.
type GroupOptions struct {
	// Directory is prepended to the directory of every member.
	Directory string
	// OutputFile is the file the group compiles into.
	OutputFile string
}

// Configuration is a named bundle of resolved paths, file groups and tasks.
// It is built once by declaration code and only read afterwards.
type Configuration struct {
	name       string
	paths      map[string]string
	pathOrder  []string
	groups     map[string]*FileGroup
	groupOrder []string
	tasks      TaskList
}

// NewConfiguration creates an empty configuration.
func NewConfiguration(name string) *Configuration {
	return &Configuration{
		name:   name,
		paths:  make(map[string]string),
		groups: make(map[string]*FileGroup),
	}
}

// Name returns the configuration name.
func (c *Configuration) Name() string {
	return c.name
}

// SetPath resolves template against the paths declared so far and stores it.
// Resolution is eager: paths must be declared leaves first, and stored values are
// not updated when other paths change later.
func (c *Configuration) SetPath(name, template string) *Configuration {
	c.storePath(name, c.ResolvePath(template))
	return c
}

func (c *Configuration) storePath(name, value string) {
	if _, ok := c.paths[name]; !ok {
		c.pathOrder = append(c.pathOrder, name)
	}
	c.paths[name] = value
}

// Path returns the resolved path declared under name.
func (c *Configuration) Path(name string) (string, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// Paths returns all declared paths in declaration order.
func (c *Configuration) Paths() []NamedPath {
	out := make([]NamedPath, len(c.pathOrder))
	for i, name := range c.pathOrder {
		out[i] = NamedPath{Name: name, Value: c.paths[name]}
	}
	return out
}

// ResolvePath resolves template against the declared paths.
func (c *Configuration) ResolvePath(template string) string {
	return ResolveTemplate(template, c.paths)
}

// UsePaths copies paths from another configuration. With no names every path is copied.
// Unknown names are skipped.
func (c *Configuration) UsePaths(from *Configuration, names ...string) *Configuration {
	if len(names) == 0 {
		names = from.pathOrder
	}
	for _, name := range names {
		if v, ok := from.paths[name]; ok {
			c.storePath(name, v)
		}
	}
	return c
}

// Group returns the group declared under name.
func (c *Configuration) Group(name string) (*FileGroup, bool) {
	g, ok := c.groups[name]
	return g, ok
}

// MustGroup is like Group but returns ErrGroupNotFound for undeclared names.
func (c *Configuration) MustGroup(name string) (*FileGroup, error) {
	g, ok := c.groups[name]
	if !ok {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(ErrGroupNotFound, "lookup failed"), "group", name),
			"configuration", c.name,
		)
	}
	return g, nil
}

// Groups returns the group names in declaration order.
func (c *Configuration) Groups() []string {
	return slices.Clone(c.groupOrder)
}

// AddGroup appends files to the group declared under name, creating it if needed,
// then applies opts. Calling it again with the same name accumulates files.
// Without files nothing is declared.
func (c *Configuration) AddGroup(name string, files []FileSource, opts GroupOptions) *Configuration {
	if len(files) == 0 {
		return c
	}

	g, ok := c.groups[name]
	if !ok {
		g = &FileGroup{Name: name}
		c.groups[name] = g
		c.groupOrder = append(c.groupOrder, name)
	}
	g.Add(files...)

	if opts.Directory != "" {
		g.SetDirectory(c.ResolvePath(opts.Directory), true)
	}
	if opts.OutputFile != "" {
		g.SetOutputFile(c.ResolvePath(opts.OutputFile))
	}
	return c
}

// HasGroup reports whether the group exists and has at least one member.
func (c *Configuration) HasGroup(name string) bool {
	g, ok := c.groups[name]
	return ok && g.Len() > 0
}

// OutputFiles collects a clone of every group's output file, in group declaration order.
func (c *Configuration) OutputFiles() *FileGroup {
	out := &FileGroup{Name: c.name}
	for _, name := range c.groupOrder {
		if f, ok := c.groups[name].OutputFile(); ok {
			out.Add(f.Clone())
		}
	}
	return out
}

// AddTask appends a task name unless it is already present.
func (c *Configuration) AddTask(names ...string) *Configuration {
	c.tasks.Add(names...)
	return c
}

// Tasks returns the task names in first-insertion order.
func (c *Configuration) Tasks() []string {
	return c.tasks.List()
}
