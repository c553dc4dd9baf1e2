// SPDX-License-Identifier: MIT
package themes

// ResolvePalette derives the full palette from partial brand inputs. It is
// pure, deterministic and total: every slot is set even when no input is
// given at all. Core colors resolve theme-override first, then the flat brand
// setting, then a fixed fallback; everything else is derived from whatever
// the core colors resolved to, so a single brand edit propagates everywhere.
func ResolvePalette(in BrandInput) Palette {
	primary := pickColor(in.ThemeOverrides[SlotPrimary], in.PrimaryColor, defaultPrimary)
	secondary := pickColor(in.ThemeOverrides[SlotSecondary], in.SecondaryColor,
		Darken(primary, secondaryDarkenFactor))
	accent := pickColor(in.ThemeOverrides[SlotAccent], in.AccentColor, defaultAccent)
	background := pickColor(in.ThemeOverrides[SlotBackground], in.BackgroundColor, defaultBackground)
	foreground := pickColor(in.ThemeOverrides[SlotForeground], in.ForegroundColor, defaultForeground)

	selectedBg := Lighten(primary, selectedTintAmount)

	p := Palette{
		SlotPrimary:             primary,
		SlotPrimaryForeground:   ContrastForeground(primary),
		SlotSecondary:           secondary,
		SlotSecondaryForeground: ContrastForeground(secondary),
		SlotAccent:              accent,
		SlotAccentForeground:    ContrastForeground(accent),
		SlotBackground:          background,
		SlotForeground:          foreground,

		// Surfaces derive from the current background/foreground, never from
		// cached values, so editing one source color shifts all of them.
		SlotSurface:         Darken(background, surfaceDarkenAmount),
		SlotMutedBackground: Darken(background, mutedBgDarkenAmount),
		SlotMutedForeground: Lighten(foreground, mutedFgLightenAmount),
		SlotBorder:          Darken(background, borderDarkenAmount),
		SlotDivider:         Darken(background, dividerDarkenAmount),
		SlotInputBorder:     Darken(background, inputDarkenAmount),

		SlotHover:              Darken(primary, hoverDarkenAmount),
		SlotSelectedBackground: selectedBg,
		// Selected text contrasts against the tinted background, not the raw
		// primary, or light primaries would produce unreadable selections.
		SlotSelectedForeground: ContrastForeground(selectedBg),

		SlotButtonBg:   primary,
		SlotButtonText: ContrastForeground(primary),
		SlotLink:       primary,
		SlotHeading:    foreground,
		SlotText:       foreground,
		SlotOverlay:    Darken(background, 0.5),

		SlotSuccess: successColor,
		SlotWarning: warningColor,
		SlotError:   errorColor,
	}
	return p
}

// pickColor returns the first candidate that parses as a color. The last
// candidate is a fixed or derived fallback and is returned as-is.
func pickColor(candidates ...string) string {
	for i, c := range candidates {
		if i == len(candidates)-1 {
			return c
		}
		if c != "" && ValidHex(c) {
			return c
		}
	}
	return ""
}
