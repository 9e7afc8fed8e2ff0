package docgen_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/optref/catalogue"
	"go.jacobcolvin.com/optref/docgen"
	"go.jacobcolvin.com/optref/render"
	"go.jacobcolvin.com/optref/scan"
	"go.jacobcolvin.com/optref/stringtest"
)

var titleCatalogue = stringtest.Lines(
	"Dygraph.OPTIONS_REFERENCE = // <JSON>",
	`{"title": {"description":"d","type":"string","default":"''","labels":["Labels"]}}`,
	"; // </JSON>",
)

func TestGenerateTitleScenario(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"dygraph-options-reference.js": {Data: []byte(titleCatalogue)},
		"tests/title.html":             {Data: []byte("<script>new Dygraph(div, data, { title: 'My Chart' });</script>")},
	}

	var buf bytes.Buffer

	require.NoError(t, docgen.NewGenerator(docgen.WithFS(fsys)).Generate(&buf))

	page := buf.String()

	assert.Contains(t, page, `<a name="Labels"><h3>Labels</h3>`)
	assert.Contains(t, page, `  <li><a href="#Labels">Labels</a>`)
	assert.Contains(t, page, `<div class='option'><a name="title"></a><b>title</b><br/>`)
	assert.Contains(t, page, `Gallery Samples: <font color=red>NONE</font><br/>`)
	assert.Contains(t, page, `Other Examples: <a href="tests/title.html">title</a><br/>`)
}

func TestGenerateOptions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"src/opts.txt":     {Data: []byte(stringtest.Lines("BEGIN", `{"width": {"labels": ["Overall"]}}`, "END"))},
		"demos/width.htm":  {Data: []byte("{ width: 3 }")},
		"demos/skip.html":  {Data: []byte("{ width: 3 }")},
		"samples/width.js": {Data: []byte("x function(){ width: 1 }")},
	}

	gen := docgen.NewGenerator(
		docgen.WithFS(fsys),
		docgen.WithCatalogue("src/opts.txt"),
		docgen.WithMarkers("BEGIN", "END"),
		docgen.WithTests("demos/*.htm"),
		docgen.WithGallery("samples/*.js"),
		docgen.WithRenderOptions(
			render.WithProject("Widgets"),
			render.WithTestsLinkStyle(render.LinkStyle{Prefix: "demos/", Extension: ".htm"}),
			render.WithGalleryLinkStyle(render.LinkStyle{Prefix: "samples/", Extension: ".js", HrefPrefix: "samples/#"}),
		),
	)

	var buf bytes.Buffer

	require.NoError(t, gen.Generate(&buf))

	page := buf.String()

	assert.Contains(t, page, "<title>Widgets Options Reference</title>")
	assert.Contains(t, page, `Gallery Samples: <a href="samples/#width">width</a><br/>`)
	assert.Contains(t, page, `Other Examples: <a href="demos/width.htm">width</a><br/>`)
	assert.NotContains(t, page, "skip")
}

func TestGenerateNoExamples(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"dygraph-options-reference.js": {Data: []byte(titleCatalogue)},
	}

	var buf bytes.Buffer

	require.NoError(t, docgen.NewGenerator(docgen.WithFS(fsys)).Generate(&buf))

	assert.Contains(t, buf.String(),
		"Gallery Samples: <font color=red>NONE</font><br/>\n  Other Examples: <font color=red>NONE</font><br/>")
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		fsys fstest.MapFS
		opts []docgen.Option
		err  error
	}{
		"missing catalogue file": {
			fsys: fstest.MapFS{},
			err:  catalogue.ErrReadInput,
		},
		"missing catalogue block": {
			fsys: fstest.MapFS{
				"dygraph-options-reference.js": {Data: []byte("var opts = {};\n")},
			},
			err: catalogue.ErrInvalidCatalogue,
		},
		"malformed catalogue": {
			fsys: fstest.MapFS{
				"dygraph-options-reference.js": {Data: []byte("<JSON>\n{\"title\": \n</JSON>\n")},
			},
			err: catalogue.ErrInvalidCatalogue,
		},
		"invalid glob": {
			fsys: fstest.MapFS{
				"dygraph-options-reference.js": {Data: []byte(titleCatalogue)},
			},
			opts: []docgen.Option{docgen.WithTests("tests/[*.html")},
			err:  docgen.ErrInvalidOption,
		},
		"unreadable example": {
			fsys: fstest.MapFS{
				"dygraph-options-reference.js": {Data: []byte(titleCatalogue)},
				"tests/dir.html/inner":         {Data: []byte("x")},
			},
			err: scan.ErrReadInput,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opts := append([]docgen.Option{docgen.WithFS(tc.fsys)}, tc.opts...)

			var buf bytes.Buffer

			err := docgen.NewGenerator(opts...).Generate(&buf)
			require.ErrorIs(t, err, tc.err)
			assert.Empty(t, buf.String())
		})
	}
}

func TestGenerateDebug(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"dygraph-options-reference.js": {Data: []byte(titleCatalogue)},
		"tests/title.html":             {Data: []byte("<p>{ title: 'Chart' }</p>")},
		"tests/other.html":             {Data: []byte("{ other: 1 }")},
		"gallery/title.js":             {Data: []byte("<b title=x>function(){ title: 't', width: 1 }")},
	}

	gen := docgen.NewGenerator(
		docgen.WithFS(fsys),
		docgen.WithDebugFiles("tests/title.html", "gallery/title.js", "tests/missing.html"),
	)

	var buf bytes.Buffer

	require.NoError(t, gen.Generate(&buf))

	out := buf.String()

	assert.Equal(t, stringtest.Lines(
		"== tests/title.html",
		"{ title: 'Chart' }",
		"-- candidates",
		"title",
		"== gallery/title.js",
		"{ title: 't', width: 1 }",
		"-- candidates",
		"title",
		"width",
	), out)
	assert.NotContains(t, out, "<html>")
	assert.NotContains(t, out, "other")
}
