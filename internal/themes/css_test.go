package themes

import (
	"strings"
	"testing"
)

func TestThemeCSSContainsAllSlots(t *testing.T) {
	p := ResolvePalette(BrandInput{PrimaryColor: "#4f46e5"})
	css := ThemeCSS(p)

	for _, slot := range Slots() {
		varName := "--color-" + cssSlotName(slot)
		if !strings.Contains(css, varName) {
			t.Errorf("theme CSS missing variable %s", varName)
		}
	}
	if !strings.Contains(css, "#4f46e5") {
		t.Error("theme CSS missing resolved primary color")
	}
}

func TestCSSSlotName(t *testing.T) {
	if got := cssSlotName("primaryForeground"); got != "primary-foreground" {
		t.Errorf("expected primary-foreground, got %s", got)
	}
	if got := cssSlotName("buttonBg"); got != "button-bg" {
		t.Errorf("expected button-bg, got %s", got)
	}
	if got := cssSlotName("error"); got != "error" {
		t.Errorf("expected error, got %s", got)
	}
}
