package themes

// propSlots maps component prop names to the palette slot that backs them
// when the prop carries no value of its own. This is how per-component color
// fields pick up brand-consistent defaults without each component wiring the
// palette explicitly.
var propSlots = map[string]string{
	"backgroundColor":       SlotBackground,
	"textColor":             SlotText,
	"headingColor":          SlotHeading,
	"buttonBackgroundColor": SlotButtonBg,
	"buttonTextColor":       SlotButtonText,
	"linkColor":             SlotLink,
	"borderColor":           SlotBorder,
	"dividerColor":          SlotDivider,
	"accentColor":           SlotAccent,
	"iconColor":             SlotPrimary,
	"hoverColor":            SlotHover,
	"surfaceColor":          SlotSurface,
	"placeholderColor":      SlotMutedForeground,
	"overlayColor":          SlotOverlay,
	"inputBorderColor":      SlotInputBorder,
}

// InjectDefaults returns a copy of props with any mapped color prop that is
// absent, nil or empty filled from the palette. Props that already carry a
// concrete value are never overwritten.
func InjectDefaults(props map[string]any, p Palette) map[string]any {
	out := make(map[string]any, len(props)+len(propSlots))
	for k, v := range props {
		out[k] = v
	}
	for prop, slot := range propSlots {
		v, ok := out[prop]
		if !ok || v == nil || v == "" {
			out[prop] = p[slot]
		}
	}
	return out
}
