// SPDX-License-Identifier: MIT
package migrate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwellhq/inkwell/internal/document"
)

// isFlatList detects Format B: an ordered content array plus a root object
// carrying a props field.
func isFlatList(data map[string]any) bool {
	if _, ok := data["content"].([]any); !ok {
		return false
	}
	root, ok := data["root"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = root["props"]
	return ok
}

// migrateFlatList upgrades a flat-list document: each content entry becomes a
// node appended to root.children in array order, with its legacy type name
// mapped to the canonical one. A parallel zones map migrates the same way,
// each zone's entries getting ids scoped to the zone.
func migrateFlatList(data map[string]any, diags *document.Diagnostics) (*document.Document, Stats) {
	doc := document.Empty()
	stats := Stats{}

	if root, ok := data["root"].(map[string]any); ok {
		if props, ok := root["props"].(map[string]any); ok {
			doc.Root.Props = props
		}
	}

	entries, _ := data["content"].([]any)
	for _, raw := range entries {
		stats.Considered++
		node := flatListNode(raw, newID(), document.RootID, diags)
		if node == nil {
			stats.Skipped++
			continue
		}
		doc.Components[node.ID] = node
		doc.Root.Children = append(doc.Root.Children, node.ID)
		stats.Migrated++
	}

	zones, _ := data["zones"].(map[string]any)
	for zone, rawList := range zones {
		list, ok := rawList.([]any)
		if !ok {
			continue
		}
		if doc.Zones == nil {
			doc.Zones = map[string][]string{}
		}
		ids := []string{}
		for _, raw := range list {
			stats.Considered++
			node := flatListNode(raw, fmt.Sprintf("%s-%s", zone, newID()), "", diags)
			if node == nil {
				stats.Skipped++
				continue
			}
			doc.Components[node.ID] = node
			ids = append(ids, node.ID)
			stats.Migrated++
		}
		doc.Zones[zone] = ids
	}

	return doc, stats
}

func flatListNode(raw any, id, parentID string, diags *document.Diagnostics) *document.Node {
	entry, ok := raw.(map[string]any)
	if !ok {
		diags.Warnf(document.CodeUnknownFormat, "", "flat-list entry is not an object")
		return nil
	}
	typeName, _ := entry["type"].(string)
	if typeName == "" {
		diags.Warnf(document.CodeUnknownType, id, "flat-list entry has no type")
		return nil
	}
	if mapped, ok := flatListTypeNames[typeName]; ok {
		typeName = mapped
	}
	props, _ := entry["props"].(map[string]any)
	if props == nil {
		props = map[string]any{}
	}
	return &document.Node{
		ID:       id,
		Type:     typeName,
		Props:    props,
		ParentID: parentID,
	}
}

func newID() string {
	return uuid.NewString()
}
