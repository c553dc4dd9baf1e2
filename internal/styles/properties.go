// SPDX-License-Identifier: MIT
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// styleProp describes one entry of the fixed style-property table. Props not
// in this table are behavioral and never contribute style output.
type styleProp struct {
	css      string
	unitless bool
	// transform reshapes the raw value before formatting. Optional.
	transform func(v any) any
}

// divideBy100 maps editor-facing 0-100 scales onto CSS 0-1 scales. Values at
// or below 1 are taken as already CSS-scale and pass through, so an authored
// 1 means fully opaque, never 1%; legacy documents carry both scales and the
// two ranges only collide at that single point.
func divideBy100(v any) any {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return v
	}
	if f > 1 {
		return f / 100
	}
	return f
}

var styleProps = map[string]styleProp{
	"backgroundColor": {css: "background-color"},
	"textColor":       {css: "color"},
	"color":           {css: "color"},
	"headingColor":    {css: "color"},
	"borderColor":     {css: "border-color"},

	"fontSize":      {css: "font-size"},
	"fontWeight":    {css: "font-weight", unitless: true},
	"fontFamily":    {css: "font-family"},
	"fontStyle":     {css: "font-style"},
	"lineHeight":    {css: "line-height", unitless: true},
	"letterSpacing": {css: "letter-spacing"},
	"textAlign":     {css: "text-align"},
	"textTransform": {css: "text-transform"},

	"padding":       {css: "padding"},
	"paddingTop":    {css: "padding-top"},
	"paddingRight":  {css: "padding-right"},
	"paddingBottom": {css: "padding-bottom"},
	"paddingLeft":   {css: "padding-left"},
	"margin":        {css: "margin"},
	"marginTop":     {css: "margin-top"},
	"marginRight":   {css: "margin-right"},
	"marginBottom":  {css: "margin-bottom"},
	"marginLeft":    {css: "margin-left"},

	"width":     {css: "width"},
	"minWidth":  {css: "min-width"},
	"maxWidth":  {css: "max-width"},
	"height":    {css: "height"},
	"minHeight": {css: "min-height"},
	"maxHeight": {css: "max-height"},

	"borderWidth":  {css: "border-width"},
	"borderStyle":  {css: "border-style"},
	"borderRadius": {css: "border-radius"},
	"boxShadow":    {css: "box-shadow"},

	"opacity": {css: "opacity", unitless: true, transform: divideBy100},
	"zIndex":  {css: "z-index", unitless: true},

	"display":        {css: "display"},
	"flexDirection":  {css: "flex-direction"},
	"alignItems":     {css: "align-items"},
	"justifyContent": {css: "justify-content"},
	"flexWrap":       {css: "flex-wrap"},
	"flexGrow":       {css: "flex-grow", unitless: true},
	"flexShrink":     {css: "flex-shrink", unitless: true},
	"order":          {css: "order", unitless: true},
	"gap":            {css: "gap"},

	"overflow":  {css: "overflow"},
	"objectFit": {css: "object-fit"},
	"cursor":    {css: "cursor"},
	"transform": {css: "transform"},
}

// stateAllowed lists the props that interaction-state overrides may style.
// Anything outside this list in a state override is ignored.
var stateAllowed = map[string]bool{
	"backgroundColor": true,
	"textColor":       true,
	"color":           true,
	"borderColor":     true,
	"opacity":         true,
	"boxShadow":       true,
	"transform":       true,
}

// spacing object edge order for shorthand emission.
var spacingEdges = [4]string{"top", "right", "bottom", "left"}

// formatValue renders a prop value as CSS text. Numbers on size-like props
// pick up a px unit; unit-less props emit the bare number. Spacing objects
// collapse to the four-value shorthand. Values that cannot be rendered
// report ok=false and are excluded from output.
func formatValue(p styleProp, v any) (string, bool) {
	if p.transform != nil {
		v = p.transform(v)
	}
	switch tv := v.(type) {
	case nil:
		return "", false
	case string:
		if tv == "" {
			return "", false
		}
		return tv, true
	case map[string]any:
		return formatSpacing(tv)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return "", false
	}
	return formatNumber(p, f), true
}

func formatNumber(p styleProp, f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if p.unitless {
		return s
	}
	return s + "px"
}

func formatSpacing(m map[string]any) (string, bool) {
	parts := make([]string, 0, 4)
	for _, edge := range spacingEdges {
		v, ok := m[edge]
		if !ok {
			return "", false
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return "", false
		}
		parts = append(parts, fmt.Sprintf("%spx", strconv.FormatFloat(f, 'f', -1, 64)))
	}
	return strings.Join(parts, " "), true
}
