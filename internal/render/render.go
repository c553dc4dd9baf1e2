// SPDX-License-Identifier: MIT
package render

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwellhq/inkwell/internal/document"
	"github.com/inkwellhq/inkwell/internal/registry"
	"github.com/inkwellhq/inkwell/internal/styles"
	"github.com/inkwellhq/inkwell/internal/themes"
)

// Synthetic node types the renderer emits around real components.
const (
	TypeZone             = "Zone"
	TypeModuleContainer  = "ModuleContainer"
	TypePlaceholder      = "Placeholder"
	TypeCyclePlaceholder = "CyclePlaceholder"
)

// DefaultModuleTimeout bounds the module-component loading phase. A hung
// module loader degrades to rendering without that module's components.
const DefaultModuleTimeout = 3 * time.Second

// Render pass phases, in order. A pass always moves forward through these;
// the module-loading phase is the only one that can block, and only up to
// its timeout.
const (
	phaseRegistryReady  = "registry-ready"
	phaseLoadingModules = "loading-modules"
	phaseModulesReady   = "modules-ready"
	phaseRendered       = "rendered"
)

// Node is one entry of the produced render tree, consumed by a presentation
// layer outside this engine.
type Node struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Tag         string            `json:"tag,omitempty"`
	Props       map[string]any    `json:"props,omitempty"`
	Styles      styles.Compiled   `json:"-"`
	InlineStyle map[string]string `json:"style,omitempty"`
	Children    []*Node           `json:"children,omitempty"`
	Placeholder bool              `json:"placeholder,omitempty"`
}

// Tree is the output of one render pass: the main tree plus independent zone
// trees and the diagnostics accumulated along the way.
type Tree struct {
	Root  *Node
	Zones map[string]*Node
	Diags *document.Diagnostics
}

// Options tunes a render pass.
type Options struct {
	// Debug emits visible placeholders for unknown types instead of
	// omitting them.
	Debug bool
	// ModuleTimeout caps module-component loading. Zero means
	// DefaultModuleTimeout.
	ModuleTimeout time.Duration
	Loader        ModuleLoader
	Logger        zerolog.Logger
}

// Render walks a canonical document and produces a render tree. Palette
// resolution happens once per pass and flows down the whole walk; data
// problems degrade to diagnostics, never to an error. The returned error only
// covers misuse such as a nil registry.
func Render(ctx context.Context, doc *document.Document, reg *registry.Registry, palette themes.Palette, modules []ModuleDescriptor, opts Options) (*Tree, error) {
	if reg == nil {
		return nil, fmt.Errorf("render: nil registry")
	}
	if doc == nil {
		doc = document.Empty()
	}
	if palette == nil {
		palette = themes.ResolvePalette(themes.BrandInput{})
	}
	log := opts.Logger

	reg.EnsureBuiltins()
	log.Debug().Str("phase", phaseRegistryReady).Msg("render pass")

	diags := &document.Diagnostics{}
	if len(modules) > 0 {
		log.Debug().Str("phase", phaseLoadingModules).Int("modules", len(modules)).Msg("render pass")
		loadModules(ctx, modules, opts, diags, log)
	}
	log.Debug().Str("phase", phaseModulesReady).Msg("render pass")

	w := &walker{
		doc:     doc,
		reg:     reg,
		palette: palette,
		opts:    opts,
		diags:   diags,
		active:  map[string]bool{},
		log:     log,
	}

	tree := &Tree{
		Root:  &Node{ID: document.RootID, Type: "Root", Props: doc.Root.Props},
		Zones: map[string]*Node{},
		Diags: diags,
	}
	for _, id := range doc.Root.Children {
		if child := w.renderNode(id); child != nil {
			tree.Root.Children = append(tree.Root.Children, child)
		}
	}

	// Zones render as independent sibling trees. An empty zone still gets a
	// container so the output shape stays stable.
	for _, zone := range sortedZones(doc.Zones) {
		zn := &Node{ID: "zone-" + zone, Type: TypeZone}
		for _, id := range doc.Zones[zone] {
			if child := w.renderNode(id); child != nil {
				zn.Children = append(zn.Children, child)
			}
		}
		tree.Zones[zone] = zn
	}

	log.Debug().Str("phase", phaseRendered).
		Int("nodes", len(doc.Components)).
		Int("diags", len(diags.All())).
		Msg("render pass")
	return tree, nil
}

// walker carries per-pass state. The active set guards against cycles within
// this walk only; concurrent passes never share walker state.
type walker struct {
	doc     *document.Document
	reg     *registry.Registry
	palette themes.Palette
	opts    Options
	diags   *document.Diagnostics
	active  map[string]bool
	log     zerolog.Logger
}

func (w *walker) renderNode(id string) *Node {
	if w.active[id] {
		w.diags.Warnf(document.CodeCycle, id, "node %q is its own ancestor, emitting cycle placeholder", id)
		return &Node{ID: id, Type: TypeCyclePlaceholder, Placeholder: true}
	}

	node, ok := w.doc.Components[id]
	if !ok {
		w.diags.Warnf(document.CodeDanglingRef, id, "node %q not found, skipping", id)
		return nil
	}

	kind, ok := w.reg.Lookup(node.Type)
	if !ok {
		w.diags.Warnf(document.CodeUnknownType, id, "no component registered for type %q", node.Type)
		if w.opts.Debug {
			return &Node{
				ID:          id,
				Type:        TypePlaceholder,
				Props:       map[string]any{"missingType": node.Type},
				Placeholder: true,
			}
		}
		return nil
	}

	w.active[id] = true
	defer delete(w.active, id)

	// Styles compile from the authored props only; the palette reaches
	// unstyled nodes through the theme stylesheet's base rules. The injected
	// props still travel on the output node for renderable implementations.
	injected := themes.InjectDefaults(node.Props, w.palette)
	compiled := styles.Compile(node, styles.Options{})

	out := &Node{
		ID:          id,
		Type:        node.Type,
		Tag:         kind.Tag,
		Props:       injected,
		Styles:      compiled,
		InlineStyle: compiled.Base,
	}

	// Children only traverse the owning child list, and only for kinds that
	// declared container capability. parentId is advisory and never drives
	// traversal.
	if kind.AcceptsChildren {
		for _, childID := range node.Children {
			if child := w.renderNode(childID); child != nil {
				out.Children = append(out.Children, child)
			}
		}
	}

	if kind.Module != "" {
		return w.wrapModule(out, kind)
	}
	return out
}

// wrapModule applies the containment wrapper around module-provided
// components: a constrained-width, padded container the engine owns, so
// third-party widgets stay visually consistent regardless of origin.
func (w *walker) wrapModule(inner *Node, kind registry.Kind) *Node {
	base := styles.RuleSet{
		"max-width": "1120px",
		"margin":    "0 auto",
		"padding":   "24px 16px",
	}
	return &Node{
		ID:          inner.ID + "-module",
		Type:        TypeModuleContainer,
		Props:       map[string]any{"module": kind.Module},
		Styles:      styles.Compiled{Base: base},
		InlineStyle: base,
		Children:    []*Node{inner},
	}
}

func sortedZones(zones map[string][]string) []string {
	out := make([]string, 0, len(zones))
	for zone := range zones {
		out = append(out, zone)
	}
	sort.Strings(out)
	return out
}
