// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// ThemeCSS generates a stylesheet exposing the resolved palette as CSS custom
// properties plus base element styles, suitable for serving standalone or
// embedding in exported pages.
func ThemeCSS(p Palette) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, slot := range Slots() {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", cssSlotName(slot), p[slot])
	}
	b.WriteString("}\n")

	b.WriteString(`
/* Base element styles */
body {
  background-color: var(--color-background);
  color: var(--color-text);
  margin: 0;
}

a {
  color: var(--color-link);
  text-decoration: none;
}

a:hover {
  color: var(--color-hover);
  text-decoration: underline;
}

button, .btn {
  background-color: var(--color-button-bg);
  color: var(--color-button-text);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
}

button:hover, .btn:hover {
  background-color: var(--color-hover);
}

.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
}

hr, .divider {
  border: none;
  border-top: 1px solid var(--color-divider);
}

input, textarea, select {
  border: 1px solid var(--color-input-border);
  background-color: var(--color-surface);
  color: var(--color-text);
  padding: 8px;
  border-radius: 4px;
}

input:focus, textarea:focus, select:focus {
  outline: none;
  border-color: var(--color-primary);
}

h1, h2, h3, h4, h5, h6 {
  color: var(--color-heading);
}

::selection {
  background-color: var(--color-selected-background);
  color: var(--color-selected-foreground);
}

.text-muted, .muted {
  color: var(--color-muted-foreground);
}

.success { color: var(--color-success); }
.error, .danger { color: var(--color-error); }
.warning { color: var(--color-warning); }
`)

	return b.String()
}

// cssSlotName converts a camelCase slot name to kebab-case for CSS variables.
func cssSlotName(slot string) string {
	var b strings.Builder
	for _, r := range slot {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
