// SPDX-License-Identifier: MIT
package htmlexport

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/inkwellhq/inkwell/internal/document"
	"github.com/inkwellhq/inkwell/internal/registry"
	"github.com/inkwellhq/inkwell/internal/styles"
	"github.com/inkwellhq/inkwell/internal/themes"
)

// Options controls HTML serialization.
type Options struct {
	// Minify strips ordinary comments and collapses inter-tag whitespace.
	Minify bool
	// Fragment emits only the node markup, without the document shell.
	Fragment bool
	// Debug emits visible placeholders for unknown types.
	Debug  bool
	Title  string
	// TagOverrides replaces the default tag for a component type.
	TagOverrides map[string]string
	Logger       zerolog.Logger
}

// defaultTags maps component types to their semantic output element. The
// registry kind's tag and a per-node tagName prop both override this table.
var defaultTags = map[string]string{
	"Heading":   "h2",
	"Text":      "p",
	"RichText":  "div",
	"Button":    "a",
	"Link":      "a",
	"Image":     "img",
	"Container": "div",
	"Section":   "section",
	"Columns":   "div",
	"Column":    "div",
	"Spacer":    "div",
	"Divider":   "hr",
	"Form":      "form",
	"Input":     "input",
	"Video":     "video",
	"Navbar":    "nav",
	"Footer":    "footer",
}

// voidTags never receive nested content, even when a node incorrectly
// declares children.
var voidTags = map[string]bool{
	"img": true, "input": true, "br": true, "hr": true,
	"meta": true, "link": true, "source": true,
}

// propAttrs maps props that pass through as plain HTML attributes.
var propAttrs = map[string]string{
	"src":         "src",
	"href":        "href",
	"alt":         "alt",
	"target":      "target",
	"placeholder": "placeholder",
	"name":        "name",
	"inputType":   "type",
}

// richTextPolicy sanitizes rich HTML props before they reach the output.
var richTextPolicy = bluemonday.UGCPolicy()

// Serialize walks a canonical document into a self-contained markup string,
// with no runtime dependency on the live renderer. It shares the style
// compiler and palette semantics with the renderer but keeps its own walk
// state.
func Serialize(doc *document.Document, reg *registry.Registry, palette themes.Palette, opts Options) (string, *document.Diagnostics) {
	diags := &document.Diagnostics{}
	if doc == nil {
		doc = document.Empty()
	}
	if reg == nil {
		reg = registry.New()
	}
	reg.EnsureBuiltins()
	if palette == nil {
		palette = themes.ResolvePalette(themes.BrandInput{})
	}

	s := &serializer{
		doc:     doc,
		reg:     reg,
		palette: palette,
		opts:    opts,
		diags:   diags,
		seen:    map[string]bool{},
		sheet:   &styles.Sheet{},
	}

	var body strings.Builder
	for _, id := range doc.Root.Children {
		s.writeNode(&body, id)
	}
	for _, zone := range sortedZones(doc.Zones) {
		body.WriteString(`<aside data-zone="` + html.EscapeString(zone) + `">` + "\n")
		for _, id := range doc.Zones[zone] {
			s.writeNode(&body, id)
		}
		body.WriteString("</aside>\n")
	}

	out := s.assemble(body.String())
	if opts.Minify {
		out = Minify(out)
	}
	return out, diags
}

type serializer struct {
	doc     *document.Document
	reg     *registry.Registry
	palette themes.Palette
	opts    Options
	diags   *document.Diagnostics
	// seen guards against cycles; this set belongs to this serialization
	// pass alone and is never shared with the live renderer.
	seen  map[string]bool
	sheet *styles.Sheet
}

func (s *serializer) writeNode(b *strings.Builder, id string) {
	if s.seen[id] {
		s.diags.Warnf(document.CodeCycle, id, "node %q already serialized, emitting cycle placeholder", id)
		b.WriteString(`<div class="iw-cycle" hidden></div>` + "\n")
		return
	}

	node, ok := s.doc.Components[id]
	if !ok {
		s.diags.Warnf(document.CodeDanglingRef, id, "node %q not found, skipping", id)
		return
	}

	kind, ok := s.reg.Lookup(node.Type)
	if !ok {
		s.diags.Warnf(document.CodeUnknownType, id, "no component registered for type %q", node.Type)
		if s.opts.Debug {
			fmt.Fprintf(b, `<div class="iw-missing">unknown component: %s</div>`+"\n", html.EscapeString(node.Type))
		}
		return
	}

	s.seen[id] = true

	// Styles compile from the authored props; palette defaults reach unstyled
	// nodes through the theme stylesheet. Injected props still feed attribute
	// and content emission so behavioral defaults apply.
	injected := themes.InjectDefaults(node.Props, s.palette)
	compiled := styles.Compile(node, styles.Options{})

	class := "iw-" + sanitizeID(id)
	if len(compiled.States) > 0 || len(compiled.Responsive) > 0 {
		s.sheet.AddCompiled("."+class, styles.Compiled{States: compiled.States, Responsive: compiled.Responsive})
	}

	tag := s.tagFor(node, kind)

	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(` class="` + class + `"`)
	writeAttrs(b, injected)
	if style := inlineStyle(compiled.Base); style != "" {
		b.WriteString(` style="` + html.EscapeString(style) + `"`)
	}
	b.WriteString(">")

	if voidTags[tag] || kind.Void {
		b.WriteString("\n")
		return
	}

	s.writeContent(b, injected)

	if kind.AcceptsChildren && len(node.Children) > 0 {
		b.WriteString("\n")
		for _, childID := range node.Children {
			s.writeNode(b, childID)
		}
	}

	b.WriteString("</" + tag + ">\n")
}

// tagFor resolves the output element: the per-node tagName prop wins, then
// caller overrides, then the registry kind, then the fixed default table.
func (s *serializer) tagFor(node *document.Node, kind registry.Kind) string {
	if override, ok := node.Props["tagName"].(string); ok && validTag(override) {
		return override
	}
	if override, ok := s.opts.TagOverrides[node.Type]; ok && validTag(override) {
		return override
	}
	if kind.Tag != "" {
		return kind.Tag
	}
	if tag, ok := defaultTags[node.Type]; ok {
		return tag
	}
	return "div"
}

// writeContent emits the node's textual content. Plain text is escaped with
// line breaks preserved; rich HTML is sanitized, never trusted.
func (s *serializer) writeContent(b *strings.Builder, props map[string]any) {
	if raw, ok := props["html"]; ok {
		if rich := cast.ToString(raw); rich != "" {
			b.WriteString(richTextPolicy.Sanitize(rich))
			return
		}
	}
	if raw, ok := props["text"]; ok {
		text := cast.ToString(raw)
		if text != "" {
			safe := html.EscapeString(text)
			b.WriteString(strings.ReplaceAll(safe, "\n", "<br>"))
		}
	}
}

func (s *serializer) assemble(body string) string {
	sheetCSS := ""
	if !s.sheet.Empty() {
		sheetCSS = s.sheet.CSS(false)
	}

	if s.opts.Fragment {
		if sheetCSS == "" {
			return body
		}
		return "<style>\n" + sheetCSS + "</style>\n" + body
	}

	title := s.opts.Title
	if title == "" {
		title = cast.ToString(s.doc.Root.Props["title"])
	}
	if title == "" {
		title = "Untitled Page"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	b.WriteString(themes.ThemeCSS(s.palette))
	b.WriteString(sheetCSS)
	b.WriteString("</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeAttrs emits the fixed attribute props in deterministic order, escaped.
func writeAttrs(b *strings.Builder, props map[string]any) {
	names := make([]string, 0, len(propAttrs))
	for prop := range propAttrs {
		names = append(names, prop)
	}
	sort.Strings(names)
	for _, prop := range names {
		raw, ok := props[prop]
		if !ok {
			continue
		}
		v := cast.ToString(raw)
		if v == "" {
			continue
		}
		b.WriteString(" " + propAttrs[prop] + `="` + html.EscapeString(v) + `"`)
	}
}

func inlineStyle(set styles.RuleSet) string {
	if len(set) == 0 {
		return ""
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+set[k])
	}
	return strings.Join(parts, "; ")
}

// sanitizeID keeps class names CSS-safe for arbitrary legacy node ids.
func sanitizeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func sortedZones(zones map[string][]string) []string {
	out := make([]string, 0, len(zones))
	for zone := range zones {
		out = append(out, zone)
	}
	sort.Strings(out)
	return out
}
