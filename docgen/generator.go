package docgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"go.jacobcolvin.com/optref/catalogue"
	"go.jacobcolvin.com/optref/render"
	"go.jacobcolvin.com/optref/scan"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrWriteOutput   = errors.New("write output")
)

// Defaults for [Generator] inputs.
const (
	DefaultCatalogue = "dygraph-options-reference.js"
	DefaultTests     = "tests/*.html"
	DefaultGallery   = "gallery/*.js"
)

// Generator produces the options reference page.
type Generator struct {
	fsys       fs.FS
	renderer   *render.Renderer
	catalogue  string
	tests      string
	gallery    string
	debugFiles []string
	loaderOpts []catalogue.LoaderOption
	renderOpts []render.Option
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator reading from the current directory with
// the default catalogue and glob patterns.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		catalogue: DefaultCatalogue,
		tests:     DefaultTests,
		gallery:   DefaultGallery,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.fsys == nil {
		g.fsys = os.DirFS(".")
	}

	g.renderer = render.NewRenderer(g.renderOpts...)

	return g
}

// WithFS sets the file system all paths and patterns are resolved in.
func WithFS(fsys fs.FS) Option {
	return func(g *Generator) {
		g.fsys = fsys
	}
}

// WithCatalogue sets the path of the file embedding the catalogue block.
func WithCatalogue(path string) Option {
	return func(g *Generator) {
		g.catalogue = path
	}
}

// WithMarkers sets the markers delimiting the catalogue block.
func WithMarkers(open, close string) Option {
	return func(g *Generator) {
		g.loaderOpts = append(g.loaderOpts, catalogue.WithMarkers(open, close))
	}
}

// WithTests sets the glob pattern selecting test example files.
func WithTests(pattern string) Option {
	return func(g *Generator) {
		g.tests = pattern
	}
}

// WithGallery sets the glob pattern selecting gallery example files.
func WithGallery(pattern string) Option {
	return func(g *Generator) {
		g.gallery = pattern
	}
}

// WithDebugFiles enables debug mode for the given files.
func WithDebugFiles(paths ...string) Option {
	return func(g *Generator) {
		g.debugFiles = append(g.debugFiles, paths...)
	}
}

// WithRenderOptions passes options to the page [render.Renderer].
func WithRenderOptions(opts ...render.Option) Option {
	return func(g *Generator) {
		g.renderOpts = append(g.renderOpts, opts...)
	}
}

// Generate writes the page, or the debug trace in debug mode, to w. Nothing
// is written if any step fails.
func (g *Generator) Generate(w io.Writer) error {
	var buf bytes.Buffer

	err := g.generate(&buf)
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// GenerateFile writes the output of [Generator.Generate] to the file at
// path. The file is left untouched if any step fails.
func (g *Generator) GenerateFile(path string) error {
	var buf bytes.Buffer

	err := g.generate(&buf)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, buf.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func (g *Generator) generate(buf *bytes.Buffer) error {
	cat, err := catalogue.NewLoader(g.loaderOpts...).Load(g.fsys, g.catalogue)
	if err != nil {
		return err
	}

	slog.Info("loaded catalogue",
		slog.String("path", g.catalogue),
		slog.Int("options", len(cat)),
	)

	testFiles, err := g.glob(g.tests)
	if err != nil {
		return err
	}

	galleryFiles, err := g.glob(g.gallery)
	if err != nil {
		return err
	}

	var scanOpts []scan.Option

	if len(g.debugFiles) > 0 {
		for _, f := range g.debugFiles {
			if !slices.Contains(testFiles, f) && !slices.Contains(galleryFiles, f) {
				slog.Warn("debug file matches no example pattern", slog.String("path", f))
			}
		}

		testFiles = g.onlyDebugFiles(testFiles)
		galleryFiles = g.onlyDebugFiles(galleryFiles)
		scanOpts = append(scanOpts, scan.WithTrace(buf))
	}

	slog.Info("scanning examples",
		slog.Int("tests", len(testFiles)),
		slog.Int("gallery", len(galleryFiles)),
	)

	err = scan.NewScanner(g.fsys, scanOpts...).CrossReference(cat, testFiles, galleryFiles)
	if err != nil {
		return err
	}

	if len(g.debugFiles) > 0 {
		return nil
	}

	for _, name := range cat.Undocumented() {
		slog.Debug("option has no examples", slog.String("option", name))
	}

	labels := cat.Labels()

	slog.Info("rendering page", slog.Int("labels", len(labels)))

	return g.renderer.Render(buf, cat, labels)
}

func (g *Generator) glob(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}

	matches, err := fs.Glob(g.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %w", ErrInvalidOption, pattern, err)
	}

	return matches, nil
}

func (g *Generator) onlyDebugFiles(files []string) []string {
	return slices.DeleteFunc(files, func(f string) bool {
		return !slices.Contains(g.debugFiles, f)
	})
}
