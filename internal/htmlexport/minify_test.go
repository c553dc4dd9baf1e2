package htmlexport

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell/internal/document"
	"github.com/inkwellhq/inkwell/internal/registry"
)

func TestMinifyStripsComments(t *testing.T) {
	in := "<div><!-- note --><p>hi</p></div>"
	assert.Equal(t, "<div><p>hi</p></div>", Minify(in))
}

func TestMinifyKeepsConditionalComments(t *testing.T) {
	in := "<!--[if IE]><link href=\"ie.css\"><![endif]--><p>hi</p>"
	assert.Equal(t, in, Minify(in))
}

func TestMinifyCollapsesInterTagWhitespace(t *testing.T) {
	in := "<div>\n  <p>hi</p>\n</div>\n"
	assert.Equal(t, "<div><p>hi</p></div>", Minify(in))
}

func TestMinifyPreservesSingleSpaceInText(t *testing.T) {
	in := "<p>hello   world</p>"
	assert.Equal(t, "<p>hello world</p>", Minify(in))
}

func TestMinifyPreservesNonASCIIText(t *testing.T) {
	in := "<p>café a b</p>"

	out := Minify(in)

	assert.Equal(t, in, out)
	assert.True(t, utf8.ValidString(out))
}

func TestMinifyCollapsesOnlyHTMLWhitespace(t *testing.T) {
	// The NBSP between the words is text, not collapsible whitespace.
	in := "<p>a   b</p>"

	assert.Equal(t, "<p>a   b</p>", Minify(in))
}

func TestMinifyUnterminatedCommentLeftAlone(t *testing.T) {
	in := "<p>a</p><!-- dangling"
	assert.Equal(t, "<p>a</p><!-- dangling", Minify(in))
}

func TestSerializeMinified(t *testing.T) {
	doc := document.Empty()
	doc.Root.Props = map[string]any{"title": "T"}
	reg := registry.New()

	out, _ := Serialize(doc, reg, nil, Options{Minify: true})

	assert.NotContains(t, out, "\n<")
	assert.Contains(t, out, "<title>T</title>")
}
