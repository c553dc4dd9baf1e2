// SPDX-License-Identifier: MIT
package document

// ValidateRefs checks every id referenced from root.children, zones and node
// children lists against the components map. Dangling references are recorded
// as diagnostics, never raised.
func ValidateRefs(d *Document, diags *Diagnostics) {
	if d == nil || diags == nil {
		return
	}
	if d.Root != nil {
		for _, id := range d.Root.Children {
			checkRef(d, RootID, id, diags)
		}
	}
	for zone, ids := range d.Zones {
		for _, id := range ids {
			if _, ok := d.Components[id]; !ok {
				diags.Warnf(CodeDanglingRef, id, "zone %q references missing node %q", zone, id)
			}
		}
	}
	for parentID, n := range d.Components {
		for _, id := range n.Children {
			checkRef(d, parentID, id, diags)
		}
	}
}

func checkRef(d *Document, parentID, id string, diags *Diagnostics) {
	if _, ok := d.Components[id]; !ok {
		diags.Warnf(CodeDanglingRef, id, "node %q references missing child %q", parentID, id)
	}
}
