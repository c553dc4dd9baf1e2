// SPDX-License-Identifier: MIT
package themes

// Palette slot names. The resolved palette is a flat map with every slot set.
const (
	SlotPrimary             = "primary"
	SlotPrimaryForeground   = "primaryForeground"
	SlotSecondary           = "secondary"
	SlotSecondaryForeground = "secondaryForeground"
	SlotAccent              = "accent"
	SlotAccentForeground    = "accentForeground"
	SlotBackground          = "background"
	SlotForeground          = "foreground"
	SlotSurface             = "surface"
	SlotMutedBackground     = "mutedBackground"
	SlotMutedForeground     = "mutedForeground"
	SlotBorder              = "border"
	SlotDivider             = "divider"
	SlotInputBorder         = "inputBorder"
	SlotHover               = "hover"
	SlotSelectedBackground  = "selectedBackground"
	SlotSelectedForeground  = "selectedForeground"
	SlotButtonBg            = "buttonBg"
	SlotButtonText          = "buttonText"
	SlotLink                = "link"
	SlotHeading             = "heading"
	SlotText                = "text"
	SlotOverlay             = "overlay"
	SlotSuccess             = "success"
	SlotWarning             = "warning"
	SlotError               = "error"
)

// Slots returns every palette slot name.
func Slots() []string {
	return []string{
		SlotPrimary, SlotPrimaryForeground,
		SlotSecondary, SlotSecondaryForeground,
		SlotAccent, SlotAccentForeground,
		SlotBackground, SlotForeground,
		SlotSurface, SlotMutedBackground, SlotMutedForeground,
		SlotBorder, SlotDivider, SlotInputBorder,
		SlotHover, SlotSelectedBackground, SlotSelectedForeground,
		SlotButtonBg, SlotButtonText,
		SlotLink, SlotHeading, SlotText, SlotOverlay,
		SlotSuccess, SlotWarning, SlotError,
	}
}

// Palette is the full set of derived color slots for one render pass. Entries
// are derived values, recomputed from brand inputs on every resolution and
// never persisted.
type Palette map[string]string

// BrandInput carries up to five site-level brand colors plus optional
// per-slot theme overrides. Any field may be empty or malformed; resolution
// is total regardless.
type BrandInput struct {
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	BackgroundColor string
	ForegroundColor string

	// ThemeOverrides maps a core slot name (primary, secondary, accent,
	// background, foreground) to a color, taking priority over the flat
	// brand settings.
	ThemeOverrides map[string]string
}

// Fixed fallbacks and derivation constants.
const (
	defaultPrimary    = "#4f46e5"
	defaultAccent     = "#f59e0b"
	defaultBackground = "#ffffff"
	defaultForeground = "#111827"

	// Contrast foregrounds chosen by the luminance threshold.
	darkForeground  = "#111827"
	lightForeground = "#ffffff"

	luminanceThreshold = 0.45

	secondaryDarkenFactor = 0.25
	hoverDarkenAmount     = 0.12
	selectedTintAmount    = 0.85

	surfaceDarkenAmount  = 0.03
	mutedBgDarkenAmount  = 0.06
	dividerDarkenAmount  = 0.08
	borderDarkenAmount   = 0.12
	inputDarkenAmount    = 0.16
	mutedFgLightenAmount = 0.40
)

// Semantic colors stay fixed regardless of brand input so success, warning
// and error states remain recognizable under any palette.
const (
	successColor = "#22c55e"
	warningColor = "#f59e0b"
	errorColor   = "#ef4444"
)
