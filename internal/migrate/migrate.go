// SPDX-License-Identifier: MIT
package migrate

import (
	"encoding/json"

	"github.com/inkwellhq/inkwell/internal/document"
)

// Stats aggregates what a structural migration touched, for observability.
// Migration reports these instead of failing.
type Stats struct {
	Considered    int
	Migrated      int
	Skipped       int
	UnmappedTypes []string
}

// Result carries the canonical document, accumulated diagnostics and
// migration stats.
type Result struct {
	Doc   *document.Document
	Diags *document.Diagnostics
	Stats Stats
}

// Options controls structural migration behavior.
type Options struct {
	// Strict turns unmapped keyed-graph types into a hard error instead of
	// a skip.
	Strict bool
	// PreserveIDs keeps legacy node ids instead of assigning fresh ones,
	// useful for diffing a document across repeated migrations.
	PreserveIDs bool
}

// Normalize detects the format of a raw page document and upgrades it to the
// canonical tree. It is total: any unrecoverable input maps to a valid empty
// document with a warning diagnostic, never a panic or error.
func Normalize(raw any) Result {
	res, _ := NormalizeWith(raw, Options{})
	return res
}

// NormalizeWith is Normalize with migration options. The only error it can
// return is a strict-mode unmapped-type failure; every other problem degrades
// locally.
func NormalizeWith(raw any, opts Options) (Result, error) {
	diags := &document.Diagnostics{}
	res := Result{Diags: diags}

	data, ok := decode(raw, diags)
	if !ok {
		res.Doc = document.Empty()
		return res, nil
	}

	// Detection runs structural predicates in priority order. Historical
	// formats never declared a version reliably, so no check trusts one.
	switch {
	case isCanonical(data):
		res.Doc = decodeCanonical(data, diags)
	case isFlatList(data):
		res.Doc, res.Stats = migrateFlatList(data, diags)
	case isKeyedGraph(data):
		doc, stats, err := migrateKeyedGraph(data, opts, diags)
		if err != nil {
			return res, err
		}
		res.Doc, res.Stats = doc, stats
	default:
		diags.Warnf(document.CodeUnknownFormat, "", "unrecognized document format")
		res.Doc = document.Empty()
		return res, nil
	}

	// The migrated document may still share prop maps with the caller's raw
	// structure; the clone keeps coercion from mutating caller input.
	res.Doc = res.Doc.Clone()
	coerceResponsiveProps(res.Doc)
	document.ValidateRefs(res.Doc, diags)
	return res, nil
}

// decode turns the accepted raw shapes (nil, string, []byte, parsed map,
// canonical document) into a generic map. ok=false means "use the empty
// document".
func decode(raw any, diags *document.Diagnostics) (map[string]any, bool) {
	switch tv := raw.(type) {
	case nil:
		return nil, false
	case *document.Document:
		if tv == nil {
			return nil, false
		}
		return toMap(tv, diags)
	case document.Document:
		return toMap(&tv, diags)
	case map[string]any:
		if len(tv) == 0 {
			return nil, false
		}
		return tv, true
	case []byte:
		return parseJSON(tv, diags)
	case string:
		if tv == "" {
			return nil, false
		}
		return parseJSON([]byte(tv), diags)
	default:
		diags.Warnf(document.CodeUnknownFormat, "", "unsupported raw document type %T", raw)
		return nil, false
	}
}

func parseJSON(data []byte, diags *document.Diagnostics) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		diags.Warnf(document.CodeParseFailure, "", "document parse failed: %v", err)
		return nil, false
	}
	if len(m) == 0 {
		return nil, false
	}
	return m, true
}

func toMap(doc *document.Document, diags *document.Diagnostics) (map[string]any, bool) {
	data, err := json.Marshal(doc)
	if err != nil {
		diags.Warnf(document.CodeParseFailure, "", "document re-encode failed: %v", err)
		return nil, false
	}
	return parseJSON(data, diags)
}

func isCanonical(data map[string]any) bool {
	if data["schemaVersion"] != document.SchemaVersion {
		return false
	}
	_, hasRoot := data["root"].(map[string]any)
	_, hasComponents := data["components"].(map[string]any)
	return hasRoot && hasComponents
}

func decodeCanonical(data map[string]any, diags *document.Diagnostics) *document.Document {
	encoded, err := json.Marshal(data)
	if err != nil {
		diags.Warnf(document.CodeParseFailure, "", "canonical re-encode failed: %v", err)
		return document.Empty()
	}
	var doc document.Document
	if err := json.Unmarshal(encoded, &doc); err != nil {
		diags.Warnf(document.CodeParseFailure, "", "canonical decode failed: %v", err)
		return document.Empty()
	}
	if doc.Root == nil {
		doc.Root = document.Empty().Root
	}
	if doc.Root.Props == nil {
		doc.Root.Props = map[string]any{}
	}
	if doc.Components == nil {
		doc.Components = map[string]*document.Node{}
	}
	for id, n := range doc.Components {
		if n == nil {
			delete(doc.Components, id)
			continue
		}
		if n.Props == nil {
			n.Props = map[string]any{}
		}
	}
	return &doc
}

// responsiveProps lists the property names that downstream consumers assume
// carry the per-breakpoint shape. Bare scalars are wrapped as the base value.
var responsiveProps = []string{
	"fontSize", "padding", "margin", "width", "height", "gap",
	"textAlign", "alignItems", "justifyContent", "flexDirection",
}

func coerceResponsiveProps(doc *document.Document) {
	for _, n := range doc.Components {
		for _, prop := range responsiveProps {
			v, ok := n.Props[prop]
			if !ok || v == nil {
				continue
			}
			if !document.IsResponsive(v) {
				n.Props[prop] = document.WrapResponsive(v)
			}
		}
	}
}
