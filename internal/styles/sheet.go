package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/inkwellhq/inkwell/internal/document"
)

// Breakpoint min-widths for media query emission. Mobile is the base and
// needs no query.
var breakpointMinWidths = map[string]int{
	document.BreakpointTablet:  768,
	document.BreakpointDesktop: 1024,
}

// Pseudo-class selector suffix per interaction state.
var statePseudo = map[string]string{
	document.StateHover:  ":hover",
	document.StateActive: ":active",
	document.StateFocus:  ":focus",
}

type sheetRule struct {
	selector string
	set      RuleSet
}

// safeSet filters out declarations whose value could escape the sheet. No
// legitimate CSS value needs braces or angle brackets.
func safeSet(set RuleSet) RuleSet {
	clean := true
	for _, v := range set {
		if strings.ContainsAny(v, "{}<>") {
			clean = false
			break
		}
	}
	if clean {
		return set
	}
	out := make(RuleSet, len(set))
	for k, v := range set {
		if strings.ContainsAny(v, "{}<>") {
			continue
		}
		out[k] = v
	}
	return out
}

// Sheet accumulates compiled node styles and renders them as a standalone
// rule sheet: base selectors first, then one media block per breakpoint.
type Sheet struct {
	rules []sheetRule
	media map[string][]sheetRule
}

// Add appends one rule set under a raw selector. Values that could terminate
// the declaration block or the enclosing style element are dropped; prop
// values come from untrusted documents and the sheet is emitted verbatim.
func (s *Sheet) Add(selector string, set RuleSet) {
	set = safeSet(set)
	if len(set) == 0 {
		return
	}
	s.rules = append(s.rules, sheetRule{selector: selector, set: set})
}

// AddCompiled spreads a node's compiled styles across the sheet: base rules
// on the selector, state rules on pseudo-selectors, responsive rules into
// their breakpoint's media block.
func (s *Sheet) AddCompiled(selector string, c Compiled) {
	s.Add(selector, c.Base)
	for _, state := range []string{document.StateHover, document.StateActive, document.StateFocus} {
		if set, ok := c.States[state]; ok {
			s.Add(selector+statePseudo[state], set)
		}
	}
	for bp, set := range c.Responsive {
		set = safeSet(set)
		if len(set) == 0 {
			continue
		}
		if s.media == nil {
			s.media = map[string][]sheetRule{}
		}
		s.media[bp] = append(s.media[bp], sheetRule{selector: selector, set: set})
	}
}

// Empty reports whether the sheet holds no rules.
func (s *Sheet) Empty() bool {
	return len(s.rules) == 0 && len(s.media) == 0
}

// CSS renders the sheet. Minified output drops comments and collapses all
// whitespace deterministically; both modes are value-identical when parsed.
func (s *Sheet) CSS(minify bool) string {
	var b strings.Builder
	if !minify {
		b.WriteString("/* generated stylesheet */\n")
	}
	for _, r := range s.rules {
		writeRule(&b, r, minify, "")
	}
	// Mobile-first ordering: tablet overrides before desktop overrides.
	for _, bp := range document.Breakpoints() {
		rules, ok := s.media[bp]
		if !ok || len(rules) == 0 {
			continue
		}
		if minify {
			fmt.Fprintf(&b, "@media (min-width:%dpx){", breakpointMinWidths[bp])
			for _, r := range rules {
				writeRule(&b, r, true, "")
			}
			b.WriteString("}")
			continue
		}
		fmt.Fprintf(&b, "@media (min-width: %dpx) {\n", breakpointMinWidths[bp])
		for _, r := range rules {
			writeRule(&b, r, false, "  ")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeRule(b *strings.Builder, r sheetRule, minify bool, indent string) {
	keys := make([]string, 0, len(r.set))
	for k := range r.set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if minify {
		b.WriteString(r.selector)
		b.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(";")
			}
			b.WriteString(k)
			b.WriteString(":")
			b.WriteString(r.set[k])
		}
		b.WriteString("}")
		return
	}

	b.WriteString(indent)
	b.WriteString(r.selector)
	b.WriteString(" {\n")
	for _, k := range keys {
		fmt.Fprintf(b, "%s  %s: %s;\n", indent, k, r.set[k])
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}
