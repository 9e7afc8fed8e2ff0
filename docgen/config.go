package docgen

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/optref/catalogue"
	"go.jacobcolvin.com/optref/render"
)

// Flags holds CLI flag names for page generation configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	Root        string
	Catalogue   string
	OpenMarker  string
	CloseMarker string
	Tests       string
	Gallery     string
	Project     string
	DebugFiles  string
	Output      string
	Watch       string
}

// Config holds CLI flag values for page generation configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags       Flags
	Root        string
	Catalogue   string
	OpenMarker  string
	CloseMarker string
	Tests       string
	Gallery     string
	Project     string
	Output      string
	DebugFiles  []string
	Watch       bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Root:        "root",
		Catalogue:   "catalogue",
		OpenMarker:  "open-marker",
		CloseMarker: "close-marker",
		Tests:       "tests",
		Gallery:     "gallery",
		Project:     "project",
		DebugFiles:  "debug-file",
		Output:      "output",
		Watch:       "watch",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds page generation flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Root, c.Flags.Root, ".",
		"directory all other paths are relative to")
	flags.StringVar(&c.Catalogue, c.Flags.Catalogue, DefaultCatalogue,
		"file embedding the options catalogue")
	flags.StringVar(&c.OpenMarker, c.Flags.OpenMarker, catalogue.DefaultOpenMarker,
		"text marking the line before the catalogue block")
	flags.StringVar(&c.CloseMarker, c.Flags.CloseMarker, catalogue.DefaultCloseMarker,
		"text marking the line after the catalogue block")
	flags.StringVar(&c.Tests, c.Flags.Tests, DefaultTests,
		"glob pattern selecting test example files")
	flags.StringVar(&c.Gallery, c.Flags.Gallery, DefaultGallery,
		"glob pattern selecting gallery example files")
	flags.StringVar(&c.Project, c.Flags.Project, render.DefaultProject,
		"library name shown in the page title and headings")
	flags.StringArrayVar(&c.DebugFiles, c.Flags.DebugFiles, nil,
		"trace scanning of this example file instead of generating the page (repeatable)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.BoolVar(&c.Watch, c.Flags.Watch, false,
		"regenerate the output file whenever a file under the root directory changes")
}

// RegisterCompletions registers shell completions for page generation flags
// on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	dirComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Root, dirComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Root, err)
	}

	for _, flag := range []string{
		c.Flags.OpenMarker, c.Flags.CloseMarker, c.Flags.Tests, c.Flags.Gallery, c.Flags.Project,
	} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator() (*Generator, error) {
	if c.Catalogue == "" {
		return nil, fmt.Errorf("%w: --%s must not be empty", ErrInvalidOption, c.Flags.Catalogue)
	}

	if c.Watch && (c.Output == "" || c.Output == "-") {
		return nil, fmt.Errorf("%w: --%s requires --%s to name a file", ErrInvalidOption, c.Flags.Watch, c.Flags.Output)
	}

	if c.Watch && len(c.DebugFiles) > 0 {
		return nil, fmt.Errorf("%w: --%s and --%s are mutually exclusive", ErrInvalidOption, c.Flags.Watch, c.Flags.DebugFiles)
	}

	root := c.rootDir()

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %w", ErrInvalidOption, c.Flags.Root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: --%s: %s is not a directory", ErrInvalidOption, c.Flags.Root, root)
	}

	opts := []Option{
		WithFS(os.DirFS(root)),
		WithCatalogue(fsPath(c.Catalogue)),
		WithMarkers(c.OpenMarker, c.CloseMarker),
		WithTests(fsPath(c.Tests)),
		WithGallery(fsPath(c.Gallery)),
		WithRenderOptions(render.WithProject(c.Project)),
	}

	for _, f := range c.DebugFiles {
		opts = append(opts, WithDebugFiles(fsPath(f)))
	}

	return NewGenerator(opts...), nil
}

// NewWatcher creates a [Watcher] for gen using this [Config].
func (c *Config) NewWatcher(gen *Generator) *Watcher {
	return NewWatcher(gen, c.rootDir(), c.Output)
}

func (c *Config) rootDir() string {
	if c.Root == "" {
		return "."
	}

	return c.Root
}

// fsPath converts a path relative to the root directory into an io/fs
// path, so "./tests/*.html" and "tests/*.html" select the same files.
// Empty paths stay empty.
func fsPath(p string) string {
	if p == "" {
		return ""
	}

	return path.Clean(filepath.ToSlash(p))
}
