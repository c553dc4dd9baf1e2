package themes

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ValidHex reports whether s parses as a hex color.
func ValidHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// Luminance computes WCAG relative luminance: sRGB channels linearized, then
// weighted 0.2126/0.7152/0.0722. Malformed colors report 0.
func Luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastForeground picks the dark or light foreground constant for text on
// the given background. Luminance above the threshold takes the dark one.
func ContrastForeground(background string) string {
	if Luminance(background) > luminanceThreshold {
		return darkForeground
	}
	return lightForeground
}

// Darken blends a color toward black by amount in [0,1]. Malformed colors
// pass through unchanged.
func Darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendRgb(colorful.Color{R: 0, G: 0, B: 0}, clamp01(amount)).Hex()
}

// Lighten blends a color toward white by amount in [0,1].
func Lighten(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, clamp01(amount)).Hex()
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
