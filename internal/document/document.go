// SPDX-License-Identifier: MIT
package document

// SchemaVersion identifies the current canonical page document format.
const SchemaVersion = "inkwell/v2"

// RootID is the fixed id of the synthetic top-level node.
const RootID = "root"

// Interaction states a node may override props for.
const (
	StateHover  = "hover"
	StateActive = "active"
	StateFocus  = "focus"
)

// Transition describes the animation applied to a node's state changes.
type Transition struct {
	Property string  `json:"property"`
	Duration float64 `json:"duration"` // seconds
	Easing   string  `json:"easing"`
	Delay    float64 `json:"delay"` // seconds
}

// Node is one entry in the page tree.
type Node struct {
	ID         string                    `json:"id"`
	Type       string                    `json:"type"`
	Props      map[string]any            `json:"props"`
	Children   []string                  `json:"children,omitempty"`
	ParentID   string                    `json:"parentId,omitempty"`
	States     map[string]map[string]any `json:"states,omitempty"`
	Transition *Transition               `json:"transition,omitempty"`
}

// Document is the canonical page tree all legacy formats are migrated into.
type Document struct {
	SchemaVersion string              `json:"schemaVersion"`
	Root          *Node               `json:"root"`
	Components    map[string]*Node    `json:"components"`
	Zones         map[string][]string `json:"zones,omitempty"`
}

// Empty returns a valid empty canonical document with a single root node.
func Empty() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Root: &Node{
			ID:    RootID,
			Type:  "Root",
			Props: map[string]any{},
		},
		Components: map[string]*Node{},
	}
}

// Clone returns a deep copy of the document. The engine never mutates caller
// input, so every migration and render works on its own copy.
func (d *Document) Clone() *Document {
	if d == nil {
		return Empty()
	}
	out := &Document{
		SchemaVersion: d.SchemaVersion,
		Root:          d.Root.clone(),
		Components:    make(map[string]*Node, len(d.Components)),
	}
	for id, n := range d.Components {
		out.Components[id] = n.clone()
	}
	if d.Zones != nil {
		out.Zones = make(map[string][]string, len(d.Zones))
		for zone, ids := range d.Zones {
			out.Zones[zone] = append([]string(nil), ids...)
		}
	}
	return out
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		ID:       n.ID,
		Type:     n.Type,
		ParentID: n.ParentID,
		Props:    copyValueMap(n.Props),
		Children: append([]string(nil), n.Children...),
	}
	if n.States != nil {
		out.States = make(map[string]map[string]any, len(n.States))
		for state, props := range n.States {
			out.States[state] = copyValueMap(props)
		}
	}
	if n.Transition != nil {
		t := *n.Transition
		out.Transition = &t
	}
	return out
}

func copyValueMap(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return copyValueMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
