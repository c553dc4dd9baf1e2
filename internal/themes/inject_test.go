package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectDefaultsFillsUnsetProps(t *testing.T) {
	p := ResolvePalette(BrandInput{PrimaryColor: "#3b82f6"})

	props := map[string]any{"text": "Book now"}
	out := InjectDefaults(props, p)

	// An unset button background picks up the palette's buttonBg, which is
	// the resolved primary.
	assert.Equal(t, p[SlotButtonBg], out["buttonBackgroundColor"])
	assert.Equal(t, "#3b82f6", out["buttonBackgroundColor"])
}

func TestInjectDefaultsPreservesConcreteValues(t *testing.T) {
	p := ResolvePalette(BrandInput{})

	props := map[string]any{"buttonBackgroundColor": "#bada55"}
	out := InjectDefaults(props, p)

	assert.Equal(t, "#bada55", out["buttonBackgroundColor"])
}

func TestInjectDefaultsFillsNilAndEmpty(t *testing.T) {
	p := ResolvePalette(BrandInput{})

	props := map[string]any{
		"textColor":       "",
		"backgroundColor": nil,
	}
	out := InjectDefaults(props, p)

	assert.Equal(t, p[SlotText], out["textColor"])
	assert.Equal(t, p[SlotBackground], out["backgroundColor"])
}

func TestInjectDefaultsDoesNotMutateInput(t *testing.T) {
	p := ResolvePalette(BrandInput{})

	props := map[string]any{"text": "hi"}
	_ = InjectDefaults(props, p)

	assert.Equal(t, map[string]any{"text": "hi"}, props)
}
