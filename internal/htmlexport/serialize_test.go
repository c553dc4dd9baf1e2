package htmlexport

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell/internal/document"
	"github.com/inkwellhq/inkwell/internal/registry"
	"github.com/inkwellhq/inkwell/internal/render"
)

func testRegistry() *registry.Registry {
	r := registry.New()
	r.EnsureBuiltins()
	return r
}

func docWith(nodes ...*document.Node) *document.Document {
	doc := document.Empty()
	for _, n := range nodes {
		doc.Components[n.ID] = n
		if n.ParentID == document.RootID {
			doc.Root.Children = append(doc.Root.Children, n.ID)
		}
	}
	return doc
}

func TestSerializeDocumentShell(t *testing.T) {
	doc := document.Empty()
	doc.Root.Props = map[string]any{"title": "Home & Garden"}

	out, diags := Serialize(doc, testRegistry(), nil, Options{})

	assert.Empty(t, diags.All())
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Home &amp; Garden</title>")
	assert.Contains(t, out, ":root")
	assert.Contains(t, out, "</html>")
}

func TestSerializeFragment(t *testing.T) {
	doc := docWith(&document.Node{ID: "t1", Type: "Text", ParentID: document.RootID,
		Props: map[string]any{"text": "Hello"}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.NotContains(t, out, "<!DOCTYPE")
	assert.Contains(t, out, `<p class="iw-t1">Hello</p>`)
}

func TestSerializeEscapesText(t *testing.T) {
	doc := docWith(&document.Node{ID: "t1", Type: "Text", ParentID: document.RootID,
		Props: map[string]any{"text": "a <b> & c\nd"}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, "a &lt;b&gt; &amp; c<br>d")
	assert.NotContains(t, out, "<b>")
}

func TestSerializeSanitizesRichHTML(t *testing.T) {
	doc := docWith(&document.Node{ID: "r1", Type: "RichText", ParentID: document.RootID,
		Props: map[string]any{"html": `<p>ok</p><script>alert(1)</script>`}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, "<p>ok</p>")
	assert.NotContains(t, out, "<script>")
}

func TestSerializeStyleSheetEscapeAttempt(t *testing.T) {
	doc := docWith(&document.Node{ID: "b1", Type: "Button", ParentID: document.RootID,
		Props: map[string]any{"text": "Go"},
		States: map[string]map[string]any{
			document.StateHover: {
				"backgroundColor": `red}</style><script>alert(1)</script><style>`,
				"opacity":         50,
			},
		}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{})

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
	// The harmless declaration from the same override survives.
	assert.Contains(t, out, ".iw-b1:hover")
	assert.Contains(t, out, "opacity: 0.5")
}

func TestSerializeVoidElements(t *testing.T) {
	doc := docWith(&document.Node{ID: "i1", Type: "Image", ParentID: document.RootID,
		Props: map[string]any{"src": "/a.png", "alt": `say "hi"`}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, `alt="say &#34;hi&#34;"`)
	assert.Contains(t, out, `src="/a.png"`)
	assert.NotContains(t, out, "</img>")
}

func TestSerializeTagPrecedence(t *testing.T) {
	doc := docWith(
		&document.Node{ID: "a", Type: "Heading", ParentID: document.RootID,
			Props: map[string]any{"text": "A", "tagName": "h1"}},
		&document.Node{ID: "b", Type: "Heading", ParentID: document.RootID,
			Props: map[string]any{"text": "B"}},
		&document.Node{ID: "c", Type: "Heading", ParentID: document.RootID,
			Props: map[string]any{"text": "C", "tagName": "h1 onclick"}},
	)

	out, _ := Serialize(doc, testRegistry(), nil, Options{
		Fragment:     true,
		TagOverrides: map[string]string{"Heading": "h3"},
	})

	// Node prop wins, then caller override; a bad tagName falls through.
	assert.Contains(t, out, `<h1 class="iw-a">A</h1>`)
	assert.Contains(t, out, `<h3 class="iw-b">B</h3>`)
	assert.Contains(t, out, `<h3 class="iw-c">C</h3>`)
}

func TestSerializeCycleGuard(t *testing.T) {
	doc := docWith(&document.Node{ID: "a", Type: "Container", ParentID: document.RootID,
		Children: []string{"b"}})
	doc.Components["b"] = &document.Node{ID: "b", Type: "Container", ParentID: "a",
		Children: []string{"a"}}

	out, diags := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, `<div class="iw-cycle" hidden></div>`)
	assert.True(t, diags.Has(document.CodeCycle))
}

func TestSerializeUnknownType(t *testing.T) {
	doc := docWith(&document.Node{ID: "x", Type: "Mystery", ParentID: document.RootID})

	out, diags := Serialize(doc, testRegistry(), nil, Options{Fragment: true})
	assert.NotContains(t, out, "Mystery")
	assert.True(t, diags.Has(document.CodeUnknownType))

	out, _ = Serialize(doc, testRegistry(), nil, Options{Fragment: true, Debug: true})
	assert.Contains(t, out, "unknown component: Mystery")
}

func TestSerializeStateStylesGoToSheet(t *testing.T) {
	doc := docWith(&document.Node{ID: "b1", Type: "Button", ParentID: document.RootID,
		Props: map[string]any{"text": "Go"},
		States: map[string]map[string]any{
			document.StateHover: {"opacity": 80},
		}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, ".iw-b1:hover")
	assert.Contains(t, out, "opacity: 0.8")
}

func TestSerializeResponsiveStylesGoToSheet(t *testing.T) {
	doc := docWith(&document.Node{ID: "h1", Type: "Heading", ParentID: document.RootID,
		Props: map[string]any{
			"text":     "Hi",
			"fontSize": map[string]any{"mobile": 18, "desktop": 32},
		}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, `style="font-size: 18px"`)
	assert.Contains(t, out, "@media (min-width: 1024px)")
	assert.Contains(t, out, "font-size: 32px")
}

func TestSerializeZones(t *testing.T) {
	doc := document.Empty()
	doc.Components["s1"] = &document.Node{ID: "s1", Type: "Text",
		Props: map[string]any{"text": "aside"}}
	doc.Zones = map[string][]string{"sidebar": {"s1"}}

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, `<aside data-zone="sidebar">`)
	assert.Contains(t, out, "aside")
}

// Both output paths walk the same document the same way: the serialized
// markup mentions exactly the nodes the live renderer emits, in the same
// order, including the skips.
func TestSerializeMatchesRenderOrder(t *testing.T) {
	doc := docWith(
		&document.Node{ID: "hero", Type: "Section", ParentID: document.RootID,
			Children: []string{"title", "ghost-1", "intro", "odd"}},
		&document.Node{ID: "cta", Type: "Button", ParentID: document.RootID,
			Props: map[string]any{"text": "Go", "href": "/go"}},
	)
	doc.Components["title"] = &document.Node{ID: "title", Type: "Heading",
		Props: map[string]any{"text": "Hi"}}
	doc.Components["intro"] = &document.Node{ID: "intro", Type: "Text",
		Props: map[string]any{"text": "Welcome"}}
	doc.Components["odd"] = &document.Node{ID: "odd", Type: "UnknownKind"}
	doc.Components["aside1"] = &document.Node{ID: "aside1", Type: "Text",
		Props: map[string]any{"text": "aside"}}
	doc.Zones = map[string][]string{"sidebar": {"aside1"}}

	tree, err := render.Render(context.Background(), doc, testRegistry(), nil, nil, render.Options{})
	require.NoError(t, err)
	var rendered []string
	var walk func(n *render.Node)
	walk = func(n *render.Node) {
		if n.ID != document.RootID {
			rendered = append(rendered, n.ID)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree.Root)
	for _, zone := range []string{"sidebar"} {
		for _, c := range tree.Zones[zone].Children {
			walk(c)
		}
	}

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})
	serialized := regexp.MustCompile(`class="iw-([A-Za-z0-9_-]+)"`).FindAllStringSubmatch(out, -1)
	var emitted []string
	for _, m := range serialized {
		emitted = append(emitted, m[1])
	}

	assert.Equal(t, []string{"hero", "title", "intro", "cta", "aside1"}, rendered)
	assert.Equal(t, rendered, emitted)
}

func TestSerializeSanitizedClassNames(t *testing.T) {
	doc := docWith(&document.Node{ID: `no"quotes here`, Type: "Text", ParentID: document.RootID,
		Props: map[string]any{"text": "x"}})

	out, _ := Serialize(doc, testRegistry(), nil, Options{Fragment: true})

	assert.Contains(t, out, `class="iw-no_quotes_here"`)
}
