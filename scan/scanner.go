package scan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"go.jacobcolvin.com/optref/catalogue"
)

// ErrReadInput indicates an example file could not be read.
var ErrReadInput = errors.New("read input")

// galleryMarker starts the code of a gallery demo.
const galleryMarker = "function("

// Scanner records option occurrences found in example files.
//
// Create instances with [NewScanner].
type Scanner struct {
	fsys  fs.FS
	trace io.Writer
}

// Option configures a [Scanner].
type Option func(*Scanner)

// WithTrace writes the braced text and candidate names of every scanned
// file to w.
func WithTrace(w io.Writer) Option {
	return func(s *Scanner) {
		s.trace = w
	}
}

// NewScanner creates a [Scanner] reading files from fsys.
func NewScanner(fsys fs.FS, opts ...Option) *Scanner {
	s := &Scanner{fsys: fsys}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CrossReference scans testFiles as [catalogue.CategoryTests], then
// galleryFiles as [catalogue.CategoryGallery].
func (s *Scanner) CrossReference(cat catalogue.Catalogue, testFiles, galleryFiles []string) error {
	err := s.Scan(cat, catalogue.CategoryTests, testFiles)
	if err != nil {
		return err
	}

	return s.Scan(cat, catalogue.CategoryGallery, galleryFiles)
}

// Scan records each of files as an example of every catalogue option it
// appears to use. Paths are recorded as given. Scanning the same file again
// records nothing new.
func (s *Scanner) Scan(cat catalogue.Catalogue, category catalogue.Category, files []string) error {
	for _, path := range files {
		data, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		braced := ExtractBraced(prefilter(category, string(data)))
		names := Candidates(braced)

		s.writeTrace(path, braced, names)

		recorded := 0

		for _, name := range names {
			opt, ok := cat[name]
			if !ok {
				continue
			}

			if opt.AddExample(category, path) {
				recorded++
			}
		}

		slog.Debug("scanned example",
			slog.String("category", string(category)),
			slog.String("path", path),
			slog.Int("candidates", len(names)),
			slog.Int("options", recorded),
		)
	}

	return nil
}

// prefilter drops the text of a gallery demo that precedes its code.
func prefilter(category catalogue.Category, text string) string {
	if category != catalogue.CategoryGallery {
		return text
	}

	if idx := strings.Index(text, galleryMarker); idx >= 0 {
		return text[idx:]
	}

	return text
}

func (s *Scanner) writeTrace(path, braced string, names []string) {
	if s.trace == nil {
		return
	}

	fmt.Fprintf(s.trace, "== %s\n%s\n", path, braced)

	if len(names) > 0 {
		fmt.Fprintf(s.trace, "-- candidates\n%s\n", strings.Join(names, "\n"))
	}
}
