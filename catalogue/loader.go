package catalogue

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
)

// Sentinel errors returned by the loader.
var (
	ErrInvalidCatalogue = errors.New("invalid catalogue")
	ErrReadInput        = errors.New("read input")
)

// Loader reads a [Catalogue] embedded in a source file.
type Loader struct {
	openMarker  string
	closeMarker string
}

// LoaderOption configures a [Loader].
type LoaderOption func(*Loader)

// NewLoader creates a [Loader] using [DefaultOpenMarker] and
// [DefaultCloseMarker] unless overridden.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		openMarker:  DefaultOpenMarker,
		closeMarker: DefaultCloseMarker,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithMarkers sets the markers delimiting the catalogue block. Empty values
// keep the current marker.
func WithMarkers(open, close string) LoaderOption {
	return func(l *Loader) {
		if open != "" {
			l.openMarker = open
		}

		if close != "" {
			l.closeMarker = close
		}
	}
}

// Load extracts and parses the catalogue block from path in fsys.
func (l *Loader) Load(fsys fs.FS, path string) (Catalogue, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	defer f.Close() //nolint:errcheck // Read-only file.

	block, err := ExtractBlock(f, l.openMarker, l.closeMarker)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, path, err)
	}

	cat, err := Parse([]byte(block))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cat, nil
}

// Parse decodes and validates a catalogue block.
func Parse(block []byte) (Catalogue, error) {
	if len(block) == 0 {
		return nil, fmt.Errorf("%w: missing catalogue block", ErrInvalidCatalogue)
	}

	var doc any

	err := yaml.Unmarshal(block, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}

	err = Validate(doc)
	if err != nil {
		return nil, err
	}

	entries, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: want a mapping of option names, got %T", ErrInvalidCatalogue, doc)
	}

	cat := make(Catalogue, len(entries))

	for name, v := range entries {
		fields, _ := v.(map[string]any)
		cat[name] = newOption(name, fields)
	}

	return cat, nil
}

// newOption builds an Option from fields that already passed [Validate].
func newOption(name string, fields map[string]any) *Option {
	opt := &Option{
		Name:        name,
		Type:        toString(fields["type"]),
		Default:     toString(fields["default"]),
		Description: toString(fields["description"]),
		Tests:       []string{},
		Gallery:     []string{},
	}

	if labels, ok := fields["labels"].([]any); ok {
		opt.Labels = make([]string, 0, len(labels))
		for _, label := range labels {
			opt.Labels = append(opt.Labels, toString(label))
		}
	}

	if params, ok := fields["parameters"].([]any); ok {
		opt.Parameters = make([]Parameter, 0, len(params))
		for _, p := range params {
			pair, _ := p.([]any)
			if len(pair) < 2 {
				continue
			}

			opt.Parameters = append(opt.Parameters, Parameter{
				Name:        toString(pair[0]),
				Description: toString(pair[1]),
			})
		}
	}

	return opt
}

func toString(val any) string {
	if s, ok := val.(string); ok {
		return s
	}

	return ""
}
