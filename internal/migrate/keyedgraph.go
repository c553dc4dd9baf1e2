// SPDX-License-Identifier: MIT
package migrate

import (
	"fmt"
	"sort"

	"github.com/inkwellhq/inkwell/internal/document"
)

// sentinelRootKey is the fixed root entry of Format A keyed-graph documents.
const sentinelRootKey = "ROOT"

// isKeyedGraph detects Format A: a sentinel root key whose value carries a
// nested type descriptor with a resolvable name.
func isKeyedGraph(data map[string]any) bool {
	root, ok := data[sentinelRootKey].(map[string]any)
	if !ok {
		return false
	}
	desc, ok := root["type"].(map[string]any)
	if !ok {
		return false
	}
	name, ok := desc["resolvedName"].(string)
	return ok && name != ""
}

// graphWalker carries per-migration state for the keyed-graph structural
// migration. The source graph is legacy data and may contain cycles, so the
// walk tracks visited keys.
type graphWalker struct {
	data     map[string]any
	opts     Options
	diags    *document.Diagnostics
	doc      *document.Document
	stats    Stats
	unmapped map[string]bool
	visited  map[string]bool
}

// migrateKeyedGraph performs the Format A structural migration. The sentinel
// root's ordered child list drives top-level order; hidden nodes are skipped;
// unmapped types are skipped and recorded, or rejected outright in strict
// mode; mapped types get their prop-transform applied and a fresh id unless
// the caller asked to preserve identity.
func migrateKeyedGraph(data map[string]any, opts Options, diags *document.Diagnostics) (*document.Document, Stats, error) {
	w := &graphWalker{
		data:     data,
		opts:     opts,
		diags:    diags,
		doc:      document.Empty(),
		unmapped: map[string]bool{},
		visited:  map[string]bool{},
	}

	root, _ := data[sentinelRootKey].(map[string]any)
	if props, ok := root["props"].(map[string]any); ok {
		w.doc.Root.Props = props
	}

	for _, key := range childKeys(root) {
		id, err := w.migrateNode(key, document.RootID)
		if err != nil {
			return nil, w.stats, err
		}
		if id != "" {
			w.doc.Root.Children = append(w.doc.Root.Children, id)
		}
	}

	if linked, ok := root["linkedNodes"].(map[string]any); ok {
		zones := make([]string, 0, len(linked))
		for zone := range linked {
			zones = append(zones, zone)
		}
		sort.Strings(zones)
		for _, zone := range zones {
			key, ok := linked[zone].(string)
			if !ok {
				continue
			}
			id, err := w.migrateNode(key, "")
			if err != nil {
				return nil, w.stats, err
			}
			if w.doc.Zones == nil {
				w.doc.Zones = map[string][]string{}
			}
			if id != "" {
				w.doc.Zones[zone] = []string{id}
			} else {
				w.doc.Zones[zone] = []string{}
			}
		}
	}

	w.stats.UnmappedTypes = sortedKeys(w.unmapped)
	return w.doc, w.stats, nil
}

// migrateNode migrates one graph entry and its subtree. It returns the new
// node's id, or "" when the entry was skipped.
func (w *graphWalker) migrateNode(key, parentID string) (string, error) {
	if w.visited[key] {
		w.diags.Warnf(document.CodeCycle, key, "keyed-graph entry %q referenced twice, skipping repeat", key)
		return "", nil
	}
	w.visited[key] = true

	entry, ok := w.data[key].(map[string]any)
	if !ok {
		w.diags.Warnf(document.CodeDanglingRef, key, "keyed-graph references missing entry %q", key)
		return "", nil
	}

	w.stats.Considered++

	if hidden, _ := entry["hidden"].(bool); hidden {
		w.stats.Skipped++
		return "", nil
	}

	typeName := resolvedName(entry)
	mapping, ok := keyedGraphTypes[typeName]
	if !ok {
		if w.opts.Strict {
			return "", fmt.Errorf("keyed-graph type %q has no canonical mapping", typeName)
		}
		w.stats.Skipped++
		w.unmapped[typeName] = true
		w.diags.Warnf(document.CodeUnmappedType, key, "keyed-graph type %q has no canonical mapping, skipping", typeName)
		return "", nil
	}

	props, _ := entry["props"].(map[string]any)
	if props == nil {
		props = map[string]any{}
	}
	if mapping.props != nil {
		props = mapping.props(props)
	}

	id := newID()
	if w.opts.PreserveIDs {
		id = key
	}
	node := &document.Node{
		ID:       id,
		Type:     mapping.name,
		Props:    props,
		ParentID: parentID,
	}
	w.doc.Components[id] = node
	w.stats.Migrated++

	for _, childKey := range childKeys(entry) {
		childID, err := w.migrateNode(childKey, id)
		if err != nil {
			return "", err
		}
		if childID != "" {
			node.Children = append(node.Children, childID)
		}
	}

	return id, nil
}

func resolvedName(entry map[string]any) string {
	desc, ok := entry["type"].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := desc["resolvedName"].(string)
	return name
}

func childKeys(entry map[string]any) []string {
	raw, ok := entry["nodes"].([]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for _, r := range raw {
		if key, ok := r.(string); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
