// Package gruntfile renders a configuration into the document consumed by the task runner.
package gruntfile

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Well-known group and path names the emitter looks for.
const (
	groupLib = "lib"
	groupSrc = "src"
	groupCSS = "css"
	groupJSX = "jsx"

	pathSCSS   = "scss"
	pathBuild  = "build"
	pathImport = "import"
	pathView   = "view"
)

const concatSeparator = ";\n"

type filesTarget struct {
	Files any `json:"files" yaml:"files"`
}

type watchOptions struct {
	Livereload bool `json:"livereload" yaml:"livereload"`
}

type watchTarget struct {
	Files   []string     `json:"files" yaml:"files"`
	Tasks   []string     `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Options watchOptions `json:"options" yaml:"options"`
}

// Emitter implements ports.Emitter for the Grunt task runner.
type Emitter struct{}

var _ ports.Emitter = (*Emitter)(nil)

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit builds the task-runner document for cfg.
func (e *Emitter) Emit(cfg *domain.Configuration) (*domain.Document, error) {
	b := &builder{
		cfg:    cfg,
		config: make(map[string]any),
	}
	b.tasks.Add(cfg.Tasks()...)

	steps := []func() error{
		b.concat,
		b.compass,
		b.watch,
		b.autoprefixer,
		b.react,
		b.uglify,
		b.cssmin,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to emit document"), "configuration", cfg.Name())
		}
	}

	return &domain.Document{
		Configuration: cfg.Name(),
		Config:        b.config,
		Tasks: map[string][]string{
			"default":    b.tasks.List(),
			"production": b.production.List(),
		},
	}, nil
}

// Encode serializes doc in the requested format.
func (e *Emitter) Encode(doc *domain.Document, format domain.Format) ([]byte, error) {
	switch format {
	case domain.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode document as json")
		}
		return append(data, '\n'), nil
	case domain.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, zerr.Wrap(err, "failed to encode document as yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, zerr.Wrap(err, "failed to encode document as yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot encode document"), "format", string(format))
	}
}

// builder accumulates plugin sections and task aliases for a single configuration.
type builder struct {
	cfg        *domain.Configuration
	config     map[string]any
	tasks      domain.TaskList
	production domain.TaskList
}

// outputGroup returns the named group when it has members and an output file.
func (b *builder) outputGroup(name string) (*domain.FileGroup, bool) {
	g, ok := b.cfg.Group(name)
	if !ok || g.Len() == 0 || !g.HasOutputFile() {
		return nil, false
	}
	return g, true
}

func (b *builder) concat() error {
	section := map[string]any{
		"options": map[string]any{"separator": concatSeparator},
	}
	for _, name := range []string{groupLib, groupSrc} {
		g, ok := b.outputGroup(name)
		if !ok {
			continue
		}
		target, err := g.SourceDestMap()
		if err != nil {
			return err
		}
		section[name] = target
		b.tasks.Add("concat:" + name)
	}
	if len(section) > 1 {
		b.config["concat"] = section
	}
	return nil
}

func (b *builder) compass() error {
	scss, ok := b.cfg.Path(pathSCSS)
	if !ok {
		return nil
	}
	options := map[string]any{"sassDir": scss}
	if build, ok := b.cfg.Path(pathBuild); ok {
		options["cssDir"] = build
	}
	if imp, ok := b.cfg.Path(pathImport); ok {
		options["importPath"] = imp
	}
	b.config["compass"] = map[string]any{
		"dist": map[string]any{"options": options},
	}
	b.tasks.Add("compass")
	return nil
}

func (b *builder) watch() error {
	live := watchOptions{Livereload: true}
	section := make(map[string]watchTarget)

	if g, ok := b.cfg.Group(groupSrc); ok && g.Len() > 0 {
		section["scripts"] = watchTarget{Files: g.List(), Tasks: []string{"concat:src"}, Options: live}
	}
	if scss, ok := b.cfg.Path(pathSCSS); ok {
		section["scss"] = watchTarget{Files: []string{scss + "/**/*.scss"}, Tasks: []string{"compass"}, Options: live}
	}
	if view, ok := b.cfg.Path(pathView); ok {
		section["view"] = watchTarget{Files: []string{view + "/**/*.php"}, Options: live}
	}
	if b.cfg.HasGroup(groupJSX) {
		g, _ := b.cfg.Group(groupJSX)
		section["react"] = watchTarget{Files: g.List(), Tasks: []string{"react:src"}, Options: live}
	}

	if len(section) > 0 {
		b.config["watch"] = section
	}
	return nil
}

func (b *builder) autoprefixer() error {
	if !b.cfg.HasGroup(groupCSS) {
		return nil
	}
	g, ok := b.outputGroup(groupCSS)
	if !ok {
		return nil
	}
	files, err := g.OutputMap(nil)
	if err != nil {
		return err
	}
	b.config["autoprefixer"] = map[string]filesTarget{groupCSS: {Files: files}}
	b.tasks.Add("autoprefixer")
	return nil
}

func (b *builder) react() error {
	if !b.cfg.HasGroup(groupJSX) {
		return nil
	}
	g, _ := b.cfg.Group(groupJSX)
	b.config["react"] = map[string]filesTarget{
		groupSrc: {Files: g.SelfMap(domain.WithExtension("js"))},
	}
	b.tasks.Add("react:src")
	return nil
}

func (b *builder) uglify() error {
	section := make(map[string]filesTarget)
	for _, name := range []string{groupLib, groupSrc} {
		g, ok := b.outputGroup(name)
		if !ok {
			continue
		}
		out, _ := g.OutputFile()
		section[name] = filesTarget{Files: map[string]string{
			out.PathWith(domain.MinifiedName): out.Path(),
		}}
		b.production.Add("uglify:" + name)
	}
	if len(section) > 0 {
		b.config["uglify"] = section
	}
	return nil
}

func (b *builder) cssmin() error {
	g, ok := b.outputGroup(groupCSS)
	if !ok {
		return nil
	}
	files, err := g.OutputMap(domain.MinifiedName)
	if err != nil {
		return err
	}
	b.config["cssmin"] = map[string]filesTarget{groupSrc: {Files: files}}
	b.production.Add("cssmin")
	return nil
}
