package render

import "strings"

// LinkStyle turns example file paths into page links.
type LinkStyle struct {
	// Prefix and Extension are removed from a path to form its display name.
	Prefix    string
	Extension string
	// HrefPrefix replaces Prefix in the link target, and the extension is
	// dropped. When empty the link target is the path itself.
	HrefPrefix string
}

// Default link styles.
var (
	TestsLinkStyle   = LinkStyle{Prefix: "tests/", Extension: ".html"}
	GalleryLinkStyle = LinkStyle{Prefix: "gallery/", Extension: ".js", HrefPrefix: "gallery/#g/"}
)

// Link is a rendered reference to an example file.
type Link struct {
	Href string
	Name string
}

// Name returns the display name of path, e.g. "tests/zoom.html" -> "zoom".
func (s LinkStyle) Name(path string) string {
	return strip(path, s.Prefix, s.Extension)
}

// Href returns the link target of path, e.g. "gallery/zoom.js" ->
// "gallery/#g/zoom" for [GalleryLinkStyle].
func (s LinkStyle) Href(path string) string {
	if s.HrefPrefix == "" {
		return path
	}

	href := path
	if s.Prefix != "" {
		href = strings.ReplaceAll(href, s.Prefix, s.HrefPrefix)
	}

	return strip(href, "", s.Extension)
}

// Links converts paths to links, keeping their order.
func (s LinkStyle) Links(paths []string) []Link {
	links := make([]Link, 0, len(paths))
	for _, p := range paths {
		links = append(links, Link{Href: s.Href(p), Name: s.Name(p)})
	}

	return links
}

// strip removes every occurrence of prefix and then of ext from s.
func strip(s, prefix, ext string) string {
	if prefix != "" {
		s = strings.ReplaceAll(s, prefix, "")
	}

	if ext != "" {
		s = strings.ReplaceAll(s, ext, "")
	}

	return s
}
