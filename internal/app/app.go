// Package app implements the application layer for stitch.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	emitter      ports.Emitter
	checker      ports.SourceChecker
	hasher       ports.Fingerprinter
	store        ports.FingerprintStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	emitter ports.Emitter,
	checker ports.SourceChecker,
	hasher ports.Fingerprinter,
	store ports.FingerprintStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		emitter:      emitter,
		checker:      checker,
		hasher:       hasher,
		store:        store,
		logger:       log,
	}
}

// Selection names the declaration file and the configuration a command acts on.
type Selection struct {
	// ConfigPath is the declaration file, or a directory to search upwards from.
	ConfigPath string
	// Use is the configuration name. Empty selects the registry default.
	Use string
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Selection
	// All renders every registered configuration instead of the selected one.
	All bool
	// Format is the document format name, "json" or "yaml".
	Format string
	// OutDir receives one document per configuration. Empty writes to the output stream.
	OutDir string
	// NoCache rewrites documents even when their fingerprint is unchanged.
	NoCache bool
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	Selection
	// Root is the directory relative member paths are resolved against.
	Root string
}

// Render emits the task-runner document of the selected configurations.
func (a *App) Render(ctx context.Context, opts RenderOptions, out io.Writer) error {
	format, err := domain.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	reg, err := a.load(opts.ConfigPath)
	if err != nil {
		return err
	}

	names := []string{selectedName(reg, opts.Use)}
	if opts.All {
		names = reg.Names()
	}

	if opts.OutDir == "" {
		for i, name := range names {
			data, err := a.encode(reg, name, format)
			if err != nil {
				return err
			}
			if i > 0 && format == domain.FormatYAML {
				if _, err := io.WriteString(out, "---\n"); err != nil {
					return zerr.Wrap(err, "failed to write document")
				}
			}
			if _, err := out.Write(data); err != nil {
				return zerr.Wrap(err, "failed to write document")
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := a.encode(reg, name, format)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.OutDir, name+"."+format.Extension())
			return a.writeDocument(path, data, opts.NoCache)
		})
	}
	return g.Wait()
}

func (a *App) encode(reg *domain.Registry, name string, format domain.Format) ([]byte, error) {
	cfg, err := reg.Use(name)
	if err != nil {
		return nil, err
	}
	doc, err := a.emitter.Emit(cfg)
	if err != nil {
		return nil, err
	}
	return a.emitter.Encode(doc, format)
}

// writeDocument writes data to path unless the file exists with the same fingerprint.
func (a *App) writeDocument(path string, data []byte, noCache bool) error {
	fingerprint := a.hasher.Fingerprint(data)

	if !noCache {
		stored, err := a.store.Get(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read fingerprint"), "path", path)
		}
		if stored == fingerprint && fileExists(path) {
			a.logger.Info(fmt.Sprintf("unchanged %s", path))
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}
	//nolint:gosec // Path is built from the output directory and a registered configuration name
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write document"), "path", path)
	}
	if err := a.store.Put(path, fingerprint); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store fingerprint"), "path", path)
	}

	a.logger.Info(fmt.Sprintf("wrote %s", path))
	return nil
}

// Show writes a colored dump of the selected configuration's groups and paths.
func (a *App) Show(_ context.Context, sel Selection, out io.Writer) error {
	cfg, err := a.configuration(sel)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "** Using Build Configuration: %s **\n\n", green(cfg.Name()))

	i := 0
	for _, name := range cfg.Groups() {
		g, _ := cfg.Group(name)
		output := ""
		if f, ok := g.OutputFile(); ok {
			output = f.Path()
		}
		fmt.Fprintf(&b, "%s -> %s\n", green(name), red(output))
		for _, path := range g.List() {
			i++
			fmt.Fprintf(&b, "%s %s\n", blue(i), path)
		}
		b.WriteString("\n")
	}

	b.WriteString("Paths:\n")
	for _, p := range cfg.Paths() {
		fmt.Fprintf(&b, "%s -> %s\n", green(p.Name), cyan(p.Value))
	}

	if _, err := io.WriteString(out, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write configuration dump")
	}
	return nil
}

// Check verifies that every member path of the selected configuration matches a file.
func (a *App) Check(_ context.Context, opts CheckOptions) error {
	cfg, err := a.configuration(opts.Selection)
	if err != nil {
		return err
	}

	var paths []string
	for _, name := range cfg.Groups() {
		g, _ := cfg.Group(name)
		paths = append(paths, g.List()...)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	missing, err := a.checker.Missing(root, paths)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to check sources"), "configuration", cfg.Name())
	}
	if len(missing) > 0 {
		for _, p := range missing {
			a.logger.Warn(fmt.Sprintf("missing source %s", p))
		}
		err := zerr.With(zerr.Wrap(domain.ErrMissingSources, "source check failed"), "configuration", cfg.Name())
		return zerr.With(err, "missing", missing)
	}

	a.logger.Info(fmt.Sprintf("%d sources present in %s", len(paths), cfg.Name()))
	return nil
}

// Tasks writes the task aliases the document of the selected configuration registers.
func (a *App) Tasks(_ context.Context, sel Selection, out io.Writer) error {
	cfg, err := a.configuration(sel)
	if err != nil {
		return err
	}
	doc, err := a.emitter.Emit(cfg)
	if err != nil {
		return err
	}

	for _, alias := range []string{"default", "production"} {
		if _, err := fmt.Fprintf(out, "%s: %s\n", alias, strings.Join(doc.Tasks[alias], " ")); err != nil {
			return zerr.Wrap(err, "failed to write tasks")
		}
	}
	return nil
}

// List writes the registered configuration names, marking the default one.
func (a *App) List(_ context.Context, configPath string, out io.Writer) error {
	reg, err := a.load(configPath)
	if err != nil {
		return err
	}

	def := reg.Default()
	for _, name := range reg.Names() {
		marker := " "
		if name == def {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %s\n", marker, name); err != nil {
			return zerr.Wrap(err, "failed to write configuration names")
		}
	}
	return nil
}

func (a *App) load(path string) (*domain.Registry, error) {
	if path == "" {
		path = "."
	}
	reg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return reg, nil
}

func (a *App) configuration(sel Selection) (*domain.Configuration, error) {
	reg, err := a.load(sel.ConfigPath)
	if err != nil {
		return nil, err
	}
	return reg.Use(selectedName(reg, sel.Use))
}

func selectedName(reg *domain.Registry, use string) string {
	if use != "" {
		return use
	}
	return reg.Default()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
