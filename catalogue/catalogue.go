package catalogue

import (
	"slices"
)

// Category is a grouping of example source files.
type Category string

const (
	// CategoryTests holds test pages exercising an option.
	CategoryTests Category = "tests"
	// CategoryGallery holds gallery demos exercising an option.
	CategoryGallery Category = "gallery"
)

// Parameter is a named argument of a callback-typed option.
type Parameter struct {
	Name        string
	Description string
}

// Option documents a single configuration option.
type Option struct {
	Name        string
	Type        string
	Default     string
	Description string
	Labels      []string
	// Parameters is nil when the catalogue entry has no parameters key.
	Parameters []Parameter
	Tests      []string
	Gallery    []string
}

// HasLabel reports whether o is classified under label.
func (o *Option) HasLabel(label string) bool {
	return slices.Contains(o.Labels, label)
}

// Examples returns the example paths recorded for category.
func (o *Option) Examples(category Category) []string {
	switch category {
	case CategoryTests:
		return o.Tests
	case CategoryGallery:
		return o.Gallery
	}

	return nil
}

// AddExample records path as an example of o in category. It returns false
// if path was already recorded, or if category is unknown.
func (o *Option) AddExample(category Category, path string) bool {
	var list *[]string

	switch category {
	case CategoryTests:
		list = &o.Tests
	case CategoryGallery:
		list = &o.Gallery
	default:
		return false
	}

	if slices.Contains(*list, path) {
		return false
	}

	*list = append(*list, path)

	return true
}

// Catalogue maps option names to their documentation.
type Catalogue map[string]*Option

// Names returns all option names in ascending order.
func (c Catalogue) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Labels returns the sorted set of labels used by any option.
func (c Catalogue) Labels() []string {
	seen := make(map[string]bool)

	var labels []string

	for _, opt := range c {
		for _, label := range opt.Labels {
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}

	slices.Sort(labels)

	return labels
}

// WithLabel returns the options classified under label, sorted by name.
func (c Catalogue) WithLabel(label string) []*Option {
	var opts []*Option

	for _, name := range c.Names() {
		if opt := c[name]; opt.HasLabel(label) {
			opts = append(opts, opt)
		}
	}

	return opts
}

// Undocumented returns the names of options without any recorded example in
// either category, sorted.
func (c Catalogue) Undocumented() []string {
	var names []string

	for _, name := range c.Names() {
		opt := c[name]
		if len(opt.Tests) == 0 && len(opt.Gallery) == 0 {
			names = append(names, name)
		}
	}

	return names
}
