// SPDX-License-Identifier: MIT
package styles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/inkwellhq/inkwell/internal/document"
)

// RuleSet is the compiled, concrete style properties for a node in one
// context: base, one interaction state, or one breakpoint.
type RuleSet map[string]string

// Compiled is the full style output for one node. Base always carries the
// mobile values; States and Responsive are sparse override sets, layered by
// the consumer via cascade precedence rather than value duplication.
type Compiled struct {
	Base       RuleSet
	States     map[string]RuleSet
	Responsive map[string]RuleSet
}

// Options adjusts compilation.
type Options struct {
	// Breakpoints overrides the breakpoints consulted for responsive
	// values. Defaults to the document breakpoint set.
	Breakpoints []string
}

// Empty reports whether nothing was compiled for the node.
func (c Compiled) Empty() bool {
	return len(c.Base) == 0 && len(c.States) == 0 && len(c.Responsive) == 0
}

// Compile converts a node's declarative props, state overrides and transition
// into concrete rule sets. Props outside the style-property table pass
// through untouched as behavioral props; unknown names never fail the pass.
func Compile(node *document.Node, opts Options) Compiled {
	out := Compiled{Base: RuleSet{}}
	if node == nil {
		return out
	}

	breakpoints := opts.Breakpoints
	if breakpoints == nil {
		breakpoints = document.Breakpoints()
	}

	// Names sort before compilation so props that share a css target (such as
	// textColor and headingColor, both emitting color) resolve the same way
	// on every pass.
	for _, name := range sortedPropNames(node.Props) {
		raw := node.Props[name]
		p, ok := styleProps[name]
		if !ok {
			continue
		}
		if document.IsResponsive(raw) {
			if v, ok := formatValue(p, document.BaseValue(raw)); ok {
				out.Base[p.css] = v
			}
			for _, bp := range breakpoints {
				if bp == document.BreakpointMobile {
					continue
				}
				override, present := document.Override(raw, bp)
				if !present {
					// No override means inherit the base value through the
					// cascade, not a duplicated rule.
					continue
				}
				if v, ok := formatValue(p, override); ok {
					if out.Responsive == nil {
						out.Responsive = map[string]RuleSet{}
					}
					if out.Responsive[bp] == nil {
						out.Responsive[bp] = RuleSet{}
					}
					out.Responsive[bp][p.css] = v
				}
			}
			continue
		}
		if v, ok := formatValue(p, raw); ok {
			out.Base[p.css] = v
		}
	}

	compileStates(node, &out)

	if node.Transition != nil {
		out.Base["transition"] = transitionRule(node.Transition)
	}

	return out
}

// Inline emits the base rule set as an inline key-value style map, for direct
// application instead of rule-sheet generation.
func Inline(node *document.Node, opts Options) map[string]string {
	c := Compile(node, opts)
	out := make(map[string]string, len(c.Base))
	for k, v := range c.Base {
		out[k] = v
	}
	return out
}

func compileStates(node *document.Node, out *Compiled) {
	for _, state := range []string{document.StateHover, document.StateActive, document.StateFocus} {
		overrides, ok := node.States[state]
		if !ok || len(overrides) == 0 {
			continue
		}
		set := RuleSet{}
		for _, name := range sortedPropNames(overrides) {
			raw := overrides[name]
			if !stateAllowed[name] {
				continue
			}
			p, ok := styleProps[name]
			if !ok {
				continue
			}
			if v, ok := formatValue(p, document.BaseValue(raw)); ok {
				set[p.css] = v
			}
		}
		if len(set) == 0 {
			continue
		}
		if out.States == nil {
			out.States = map[string]RuleSet{}
		}
		out.States[state] = set
	}
}

// Named transition shorthands expanding to their constituent properties.
var transitionShorthands = map[string][]string{
	"colors": {"background-color", "color", "border-color"},
	"shadow": {"box-shadow"},
}

func transitionRule(t *document.Transition) string {
	duration := t.Duration
	if duration <= 0 {
		duration = 0.2
	}
	easing := t.Easing
	if easing == "" {
		easing = "ease"
	}

	props := []string{"all"}
	if t.Property != "" {
		if expanded, ok := transitionShorthands[t.Property]; ok {
			props = expanded
		} else {
			props = []string{t.Property}
		}
	}

	timing := fmt.Sprintf("%ss %s", formatSeconds(duration), easing)
	if t.Delay > 0 {
		timing += " " + formatSeconds(t.Delay) + "s"
	}

	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p + " " + timing
	}
	return strings.Join(parts, ", ")
}

func formatSeconds(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortedPropNames(props map[string]any) []string {
	out := make([]string, 0, len(props))
	for name := range props {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
