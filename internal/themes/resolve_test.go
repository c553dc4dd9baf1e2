package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaletteTotalWithNoInput(t *testing.T) {
	p := ResolvePalette(BrandInput{})

	for _, slot := range Slots() {
		assert.NotEmpty(t, p[slot], "slot %s must be set", slot)
	}
}

func TestResolvePaletteDeterministic(t *testing.T) {
	in := BrandInput{PrimaryColor: "#3b82f6", AccentColor: "#f97316"}

	assert.Equal(t, ResolvePalette(in), ResolvePalette(in))
}

func TestResolvePalettePrimaryOnly(t *testing.T) {
	p := ResolvePalette(BrandInput{PrimaryColor: "#3b82f6"})

	assert.Equal(t, "#3b82f6", p[SlotPrimary])
	// A mid-luminance blue takes the light foreground.
	assert.Equal(t, lightForeground, p[SlotPrimaryForeground])
	// Secondary is derived by darkening, never the raw input.
	assert.Equal(t, Darken("#3b82f6", secondaryDarkenFactor), p[SlotSecondary])
	assert.NotEqual(t, "#3b82f6", p[SlotSecondary])
}

func TestResolvePaletteThemeOverrideWins(t *testing.T) {
	p := ResolvePalette(BrandInput{
		PrimaryColor:   "#3b82f6",
		ThemeOverrides: map[string]string{SlotPrimary: "#e11d48"},
	})

	assert.Equal(t, "#e11d48", p[SlotPrimary])
	assert.Equal(t, "#e11d48", p[SlotButtonBg])
}

func TestResolvePaletteInvalidColorFallsBack(t *testing.T) {
	p := ResolvePalette(BrandInput{PrimaryColor: "not-a-color"})

	assert.Equal(t, defaultPrimary, p[SlotPrimary])
	for _, slot := range Slots() {
		assert.NotEmpty(t, p[slot], "slot %s must survive invalid input", slot)
	}
}

func TestSemanticColorsFixed(t *testing.T) {
	branded := ResolvePalette(BrandInput{PrimaryColor: "#22c55e", BackgroundColor: "#0f172a"})
	plain := ResolvePalette(BrandInput{})

	for _, slot := range []string{SlotSuccess, SlotWarning, SlotError} {
		assert.Equal(t, plain[slot], branded[slot], "semantic slot %s must ignore brand input", slot)
	}
}

func TestSurfacesTrackBackgroundEdits(t *testing.T) {
	light := ResolvePalette(BrandInput{BackgroundColor: "#ffffff"})
	dark := ResolvePalette(BrandInput{BackgroundColor: "#0f172a"})

	assert.NotEqual(t, light[SlotSurface], dark[SlotSurface])
	assert.NotEqual(t, light[SlotBorder], dark[SlotBorder])
	assert.NotEqual(t, light[SlotMutedBackground], dark[SlotMutedBackground])
}

func TestSelectedForegroundContrastsAgainstTint(t *testing.T) {
	// A dark primary produces a light tint, which needs the dark foreground
	// even though the raw primary would need the light one.
	p := ResolvePalette(BrandInput{PrimaryColor: "#1e3a8a"})

	require.Equal(t, lightForeground, p[SlotPrimaryForeground])
	assert.Equal(t, darkForeground, p[SlotSelectedForeground])
}

func TestContrastForegroundTwoFixedValues(t *testing.T) {
	cases := []string{"#ffffff", "#000000", "#3b82f6", "#f59e0b", "#22c55e", "#0f172a", "#e5e7eb"}
	for _, c := range cases {
		fg := ContrastForeground(c)
		assert.Contains(t, []string{darkForeground, lightForeground}, fg, c)
		if Luminance(c) > luminanceThreshold {
			assert.Equal(t, darkForeground, fg, c)
		} else {
			assert.Equal(t, lightForeground, fg, c)
		}
	}
}

func TestLuminanceExtremes(t *testing.T) {
	assert.InDelta(t, 1.0, Luminance("#ffffff"), 0.001)
	assert.InDelta(t, 0.0, Luminance("#000000"), 0.001)
	assert.Equal(t, 0.0, Luminance("bogus"))
}

func TestDarkenLightenClampAndPassThrough(t *testing.T) {
	assert.Equal(t, "#000000", Darken("#336699", 1.5))
	assert.Equal(t, "#ffffff", Lighten("#336699", 2))
	assert.Equal(t, "bogus", Darken("bogus", 0.5))
}
