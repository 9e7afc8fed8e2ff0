package render

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"text/template"

	"go.jacobcolvin.com/optref/catalogue"
)

// Placeholder replaces empty type, default and description values.
const Placeholder = "(missing)"

// DefaultProject names the documented library.
const DefaultProject = "Dygraphs"

// ErrRender indicates the page could not be written.
var ErrRender = errors.New("render page")

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Renderer writes the options reference page.
//
// Create instances with [NewRenderer].
type Renderer struct {
	project string
	tests   LinkStyle
	gallery LinkStyle
}

// Option configures a [Renderer].
type Option func(*Renderer)

// NewRenderer creates a [Renderer] for [DefaultProject] using
// [TestsLinkStyle] and [GalleryLinkStyle].
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		project: DefaultProject,
		tests:   TestsLinkStyle,
		gallery: GalleryLinkStyle,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithProject sets the library name shown in the page title and headings.
func WithProject(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.project = name
		}
	}
}

// WithTestsLinkStyle sets how test example paths become links.
func WithTestsLinkStyle(s LinkStyle) Option {
	return func(r *Renderer) {
		r.tests = s
	}
}

// WithGalleryLinkStyle sets how gallery example paths become links.
func WithGalleryLinkStyle(s LinkStyle) Option {
	return func(r *Renderer) {
		r.gallery = s
	}
}

type page struct {
	Project  string
	Labels   []string
	Sections []section
}

type section struct {
	Label   string
	Options []optionView
}

type optionView struct {
	Name          string
	Description   string
	Type          string
	Default       string
	Parameters    []catalogue.Parameter
	Gallery       []Link
	Tests         []Link
	HasParameters bool
}

// Render writes the page for cat to w, with one section per entry of labels
// in the given order.
func (r *Renderer) Render(w io.Writer, cat catalogue.Catalogue, labels []string) error {
	p := page{
		Project: r.project,
		Labels:  labels,
	}

	for _, label := range labels {
		s := section{Label: label}
		for _, opt := range cat.WithLabel(label) {
			s.Options = append(s.Options, r.view(opt))
		}

		p.Sections = append(p.Sections, s)
	}

	err := pageTemplate.ExecuteTemplate(w, "page.html.tmpl", p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	return nil
}

func (r *Renderer) view(opt *catalogue.Option) optionView {
	return optionView{
		Name:          opt.Name,
		Description:   orPlaceholder(opt.Description),
		Type:          orPlaceholder(opt.Type),
		Default:       orPlaceholder(opt.Default),
		Parameters:    opt.Parameters,
		HasParameters: opt.Parameters != nil,
		Gallery:       r.gallery.Links(opt.Gallery),
		Tests:         r.tests.Links(opt.Tests),
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}

	return s
}
